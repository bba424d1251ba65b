// Package common defines shared constants and sentinel errors used across
// the bookshelf server and client. Callers should match them with errors.Is.
//
// Errors are grouped into kinds. A specific error (for example ErrTokenExpired)
// unwraps to its kind (ErrUnauthorized), so transports only need to check the
// kind while logs can still report the precise cause.
package common

import "errors"

// Error kinds.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("already exists")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
)

var (
	// Validation errors.
	ErrMissingField    = newKindError(ErrValidation, "username and password are required")
	ErrInvalidUsername = newKindError(ErrValidation, "invalid username")
	ErrInvalidRequest  = newKindError(ErrValidation, "invalid request")

	// Credential errors.
	ErrUsernameTaken  = newKindError(ErrConflict, "username already exists")
	ErrBadCredentials = newKindError(ErrUnauthorized, "invalid username or password")

	// Token errors.
	ErrTokenMissing      = newKindError(ErrUnauthorized, "no token provided")
	ErrTokenMalformed    = newKindError(ErrUnauthorized, "malformed token")
	ErrTokenExpired      = newKindError(ErrUnauthorized, "token expired")
	ErrTokenBadSignature = newKindError(ErrUnauthorized, "invalid token signature")

	// Catalog and review errors.
	ErrBookNotFound   = newKindError(ErrNotFound, "book not found")
	ErrReviewNotFound = newKindError(ErrNotFound, "review not found for this user")
)

type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }
