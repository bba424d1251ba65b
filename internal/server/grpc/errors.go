package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func codeFor(err error) codes.Code {
	switch {
	case errors.Is(err, common.ErrValidation):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrUnauthorized):
		return codes.Unauthenticated
	case errors.Is(err, common.ErrConflict):
		return codes.AlreadyExists
	case errors.Is(err, common.ErrNotFound):
		return codes.NotFound
	default:
		return codes.Internal
	}
}

// toStatus converts a service error. Internal errors are logged and replaced
// by a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	code := codeFor(err)
	if code == codes.Internal {
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(code, "internal error")
	}
	return status.Error(code, err.Error())
}
