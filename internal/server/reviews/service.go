package reviews

import (
	"context"

	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/auth"
)

// TokenVerifier resolves an access token to the username it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Service mutates reviews on behalf of the token holder. The username always
// comes from the verified token, never from the request.
type Service struct {
	tokens TokenVerifier
	store  *Store
	logger logging.Logger
}

func NewService(tokens TokenVerifier, store *Store, logger logging.Logger) *Service {
	return &Service{
		tokens: tokens,
		store:  store,
		logger: logger.With("module", "reviews"),
	}
}

func (s *Service) authenticate(ctx context.Context, token, op, isbn string) (string, error) {
	username, err := s.tokens.Verify(token)
	if err != nil {
		s.logger.Warn(ctx, "token rejected", "op", op, "isbn", isbn, "kind", auth.FailureKind(err))
		return "", err
	}
	return username, nil
}

// Upsert stores text as the token holder's review of isbn and returns all
// reviews of the book.
func (s *Service) Upsert(ctx context.Context, token, isbn, text string) (map[string]string, error) {
	username, err := s.authenticate(ctx, token, "upsert", isbn)
	if err != nil {
		return nil, err
	}

	reviews, err := s.store.Upsert(isbn, username, text)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "review stored", "isbn", isbn, "username", username)
	return reviews, nil
}

// Delete removes the token holder's review of isbn and returns the rest.
func (s *Service) Delete(ctx context.Context, token, isbn string) (map[string]string, error) {
	username, err := s.authenticate(ctx, token, "delete", isbn)
	if err != nil {
		return nil, err
	}

	reviews, err := s.store.Delete(isbn, username)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "review deleted", "isbn", isbn, "username", username)
	return reviews, nil
}

// Get lists the reviews of isbn. It needs no token.
func (s *Service) Get(ctx context.Context, isbn string) (map[string]string, error) {
	return s.store.Get(isbn)
}
