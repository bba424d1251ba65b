package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/bookshelf/internal/common"
)

// MemoryRepository keeps identities in a map. Registrations are rare and
// logins frequent, so reads take the shared lock.
type MemoryRepository struct {
	mu         sync.RWMutex
	identities map[string]Identity
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{identities: make(map[string]Identity)}
}

func (r *MemoryRepository) Create(ctx context.Context, identity *Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.identities[identity.Username]; exists {
		return common.ErrUsernameTaken
	}

	stored := *identity
	stored.PasswordHash = append([]byte(nil), identity.PasswordHash...)
	r.identities[identity.Username] = stored

	return nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.identities[username]
	if !ok {
		return nil, common.ErrNotFound
	}

	identity.PasswordHash = append([]byte(nil), identity.PasswordHash...)
	return &identity, nil
}

// Len returns the number of registered identities.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.identities)
}
