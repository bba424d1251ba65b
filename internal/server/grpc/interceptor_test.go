package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/rpc"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
)

func TestInterceptor_PublicMethodSkipsToken(t *testing.T) {
	s := &GRPCServer{}

	md := metadata.New(map[string]string{common.AuthorizationHeaderName: "Bearer abc"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: rpc.FullMethodPing}

	var seen string
	h := func(ctx context.Context, req any) (any, error) {
		seen = accessTokenFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Empty(t, seen)
}

func TestInterceptor_MovesBearerToken(t *testing.T) {
	s := &GRPCServer{}

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "bearer", value: "Bearer abc.def", want: "abc.def"},
		{name: "wrong scheme", value: "Basic abc", want: ""},
		{name: "bare token", value: "abc.def", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := metadata.New(map[string]string{common.AuthorizationHeaderName: tt.value})
			ctx := metadata.NewIncomingContext(context.Background(), md)
			info := &grpc.UnaryServerInfo{FullMethod: rpc.FullMethodPutReview}

			var seen string
			h := func(ctx context.Context, req any) (any, error) {
				seen = accessTokenFromContext(ctx)
				return nil, nil
			}

			_, err := s.accessTokenInterceptor(ctx, nil, info, h)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, seen)
		})
	}
}

func TestInterceptor_NoMetadata(t *testing.T) {
	s := &GRPCServer{}
	info := &grpc.UnaryServerInfo{FullMethod: rpc.FullMethodDeleteReview}

	called := false
	h := func(ctx context.Context, req any) (any, error) {
		called = true
		assert.Empty(t, accessTokenFromContext(ctx))
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestCodeFor(t *testing.T) {
	assert.Equal(t, codes.InvalidArgument, codeFor(common.ErrInvalidUsername))
	assert.Equal(t, codes.Unauthenticated, codeFor(common.ErrTokenBadSignature))
	assert.Equal(t, codes.AlreadyExists, codeFor(common.ErrUsernameTaken))
	assert.Equal(t, codes.NotFound, codeFor(common.ErrReviewNotFound))
	assert.Equal(t, codes.Internal, codeFor(errors.New("boom")))
}
