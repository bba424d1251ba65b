package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// Hasher turns passwords into one-way salted hashes and checks candidates
// against them.
type Hasher interface {
	Hash(password string) ([]byte, error)
	Compare(hash []byte, password string) error
}

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password must be at most 72 bytes", common.ErrInvalidRequest)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

// Compare returns common.ErrBadCredentials when password does not match hash.
func (h *BcryptHasher) Compare(hash []byte, password string) error {
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return common.ErrBadCredentials
	}
	return nil
}
