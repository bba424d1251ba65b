// Package users implements the credential store and the registration and
// login flows on top of it.
package users

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/auth"
)

// MinUsernameLength is counted in characters, not bytes.
const MinUsernameLength = 3

// TokenIssuer mints an access token for a verified username.
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// Service provides the identity lifecycle:
// - Register: validate and store a new identity
// - Verify: check a username/password pair
// - Login: Verify, then issue an access token
type Service struct {
	repo   Repository
	hasher auth.Hasher
	tokens TokenIssuer
	logger logging.Logger

	dummyOnce sync.Once
	dummyHash []byte

	now func() time.Time
}

func NewService(repo Repository, hasher auth.Hasher, tokens TokenIssuer, logger logging.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "users"),
		now:    time.Now,
	}
}

// ValidateCredentials applies the input rules shared by registration and login.
func ValidateCredentials(username, password string) error {
	if username == "" || password == "" {
		return common.ErrMissingField
	}
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return common.ErrInvalidUsername
	}
	return nil
}

// Register creates an identity. It fails with common.ErrMissingField,
// common.ErrInvalidUsername or common.ErrUsernameTaken.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if err := ValidateCredentials(username, password); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	err = s.repo.Create(ctx, &Identity{Username: username, PasswordHash: hash, CreatedAt: s.now()})
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			return err
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return nil
}

// Verify returns the identity when password matches. Unknown usernames and
// wrong passwords both yield common.ErrBadCredentials, and both pay for one
// hash comparison so response timing does not reveal which one it was.
func (s *Service) Verify(ctx context.Context, username, password string) (*Identity, error) {
	identity, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			_ = s.hasher.Compare(s.getDummyHash(ctx), password)
			return nil, common.ErrBadCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if err := s.hasher.Compare(identity.PasswordHash, password); err != nil {
		return nil, common.ErrBadCredentials
	}

	return identity, nil
}

// Login verifies the credentials and returns a fresh access token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if err := ValidateCredentials(username, password); err != nil {
		return "", err
	}

	identity, err := s.Verify(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrBadCredentials) {
			s.logger.Warn(ctx, "login failed", "username", username)
		}
		return "", err
	}

	token, err := s.tokens.Issue(identity.Username)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	s.logger.Info(ctx, "user logged in", "username", identity.Username)
	return token, nil
}

// fallbackDummyHash is a well-formed cost-10 bcrypt hash used when the
// hasher cannot produce one.
var fallbackDummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func (s *Service) getDummyHash(ctx context.Context) []byte {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("dummy-password-for-timing")
		if err != nil {
			s.logger.Error(ctx, "dummy hash failed, using fallback", "error", err)
			h = fallbackDummyHash
		}
		s.dummyHash = h
	})
	return s.dummyHash
}
