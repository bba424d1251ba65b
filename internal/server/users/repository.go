package users

import (
	"context"
)

type Repository interface {
	// Create stores identity unless the username is taken, in which case it
	// returns common.ErrUsernameTaken. The check and the insert are atomic.
	Create(ctx context.Context, identity *Identity) error
	// GetByUsername returns common.ErrNotFound for unknown usernames.
	GetByUsername(ctx context.Context, username string) (*Identity, error)
}
