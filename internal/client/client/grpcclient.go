package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/bookshelf/internal/common"
	"github.com/dmitrijs2005/bookshelf/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// bookshelfAPI is implemented by *rpc.BookshelfClient.
type bookshelfAPI interface {
	Register(ctx context.Context, in *rpc.RegisterRequest, opts ...grpc.CallOption) (*rpc.RegisterResponse, error)
	Login(ctx context.Context, in *rpc.LoginRequest, opts ...grpc.CallOption) (*rpc.LoginResponse, error)
	PutReview(ctx context.Context, in *rpc.PutReviewRequest, opts ...grpc.CallOption) (*rpc.ReviewsResponse, error)
	DeleteReview(ctx context.Context, in *rpc.DeleteReviewRequest, opts ...grpc.CallOption) (*rpc.ReviewsResponse, error)
	GetReviews(ctx context.Context, in *rpc.GetReviewsRequest, opts ...grpc.CallOption) (*rpc.ReviewsResponse, error)
	Ping(ctx context.Context, in *rpc.PingRequest, opts ...grpc.CallOption) (*rpc.PingResponse, error)
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      bookshelfAPI

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.AccessToken(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewBookshelfClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = rpc.NewBookshelfClient(conn)
	return nil
}

func (s *GRPCClient) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// SetAccessToken replaces the token sent with later calls; "" stops sending one.
func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) Register(ctx context.Context, username, password string) error {

	_, err := s.client.Register(ctx, &rpc.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

// Login stores the returned token for later calls and also returns it.
func (s *GRPCClient) Login(ctx context.Context, username, password string) (string, error) {

	resp, err := s.client.Login(ctx, &rpc.LoginRequest{Username: username, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	s.SetAccessToken(resp.Token)
	return resp.Token, nil
}

func (s *GRPCClient) PutReview(ctx context.Context, isbn, text string) (map[string]string, error) {

	resp, err := s.client.PutReview(ctx, &rpc.PutReviewRequest{ISBN: isbn, Review: text})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.Reviews, nil
}

func (s *GRPCClient) DeleteReview(ctx context.Context, isbn string) (map[string]string, error) {

	resp, err := s.client.DeleteReview(ctx, &rpc.DeleteReviewRequest{ISBN: isbn})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.Reviews, nil
}

func (s *GRPCClient) GetReviews(ctx context.Context, isbn string) (map[string]string, error) {

	resp, err := s.client.GetReviews(ctx, &rpc.GetReviewsRequest{ISBN: isbn})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp.Reviews, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &rpc.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// mapError turns a gRPC status into the matching common kind, keeping the
// server's message. An expired token maps to common.ErrTokenExpired itself.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		if st.Message() == common.ErrTokenExpired.Error() {
			return common.ErrTokenExpired
		}
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrValidation, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", common.ErrConflict, st.Message())
	case codes.NotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
