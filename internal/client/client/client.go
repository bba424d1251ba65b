package client

import (
	"context"
)

// Client is the surface the CLI needs from the server.
type Client interface {
	Close() error
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	SetAccessToken(token string)
	PutReview(ctx context.Context, isbn, text string) (map[string]string, error)
	DeleteReview(ctx context.Context, isbn string) (map[string]string, error)
	GetReviews(ctx context.Context, isbn string) (map[string]string, error)
	Ping(ctx context.Context) error
}
