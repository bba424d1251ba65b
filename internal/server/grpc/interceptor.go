package grpc

import (
	"context"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/rpc"
	"github.com/dmitrijs2005/bookshelf/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type ctxKey string

const accessTokenKey ctxKey = "accessToken"

// methods whose handlers act on behalf of the token holder
var authenticatedMethods = map[string]bool{
	rpc.FullMethodPutReview:    true,
	rpc.FullMethodDeleteReview: true,
}

// accessTokenInterceptor moves the bearer token from the authorization
// metadata into the context. Verification is left to the review service so
// that every failure kind is reported the same way on both transports.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if authenticatedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AuthorizationHeaderName)
			if len(values) > 0 {
				accessToken = auth.BearerToken(values[0])
			}
		}

		ctx = context.WithValue(ctx, accessTokenKey, accessToken)
	}

	return handler(ctx, req)
}

func accessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey).(string)
	return token
}
