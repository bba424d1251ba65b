package rpc

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "bookshelf.v1.Bookshelf"

const (
	FullMethodRegister     = "/" + ServiceName + "/Register"
	FullMethodLogin        = "/" + ServiceName + "/Login"
	FullMethodPutReview    = "/" + ServiceName + "/PutReview"
	FullMethodDeleteReview = "/" + ServiceName + "/DeleteReview"
	FullMethodGetReviews   = "/" + ServiceName + "/GetReviews"
	FullMethodPing         = "/" + ServiceName + "/Ping"
)

// BookshelfServer is implemented by the server transport.
type BookshelfServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	PutReview(context.Context, *PutReviewRequest) (*ReviewsResponse, error)
	DeleteReview(context.Context, *DeleteReviewRequest) (*ReviewsResponse, error)
	GetReviews(context.Context, *GetReviewsRequest) (*ReviewsResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
}

// unary adapts a typed method to a grpc.MethodDesc, running the server's
// interceptor chain the way generated code does.
func unary[Req, Resp any](name string, call func(BookshelfServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BookshelfServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(BookshelfServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookshelfServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Register", BookshelfServer.Register),
		unary("Login", BookshelfServer.Login),
		unary("PutReview", BookshelfServer.PutReview),
		unary("DeleteReview", BookshelfServer.DeleteReview),
		unary("GetReviews", BookshelfServer.GetReviews),
		unary("Ping", BookshelfServer.Ping),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bookshelf/v1/bookshelf",
}

func RegisterBookshelfServer(s grpc.ServiceRegistrar, srv BookshelfServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// BookshelfClient calls the service with the Struct codec.
type BookshelfClient struct {
	cc grpc.ClientConnInterface
}

func NewBookshelfClient(cc grpc.ClientConnInterface) *BookshelfClient {
	return &BookshelfClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BookshelfClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, FullMethodRegister, in, opts)
}

func (c *BookshelfClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, FullMethodLogin, in, opts)
}

func (c *BookshelfClient) PutReview(ctx context.Context, in *PutReviewRequest, opts ...grpc.CallOption) (*ReviewsResponse, error) {
	return invoke[ReviewsResponse](ctx, c.cc, FullMethodPutReview, in, opts)
}

func (c *BookshelfClient) DeleteReview(ctx context.Context, in *DeleteReviewRequest, opts ...grpc.CallOption) (*ReviewsResponse, error) {
	return invoke[ReviewsResponse](ctx, c.cc, FullMethodDeleteReview, in, opts)
}

func (c *BookshelfClient) GetReviews(ctx context.Context, in *GetReviewsRequest, opts ...grpc.CallOption) (*ReviewsResponse, error) {
	return invoke[ReviewsResponse](ctx, c.cc, FullMethodGetReviews, in, opts)
}

func (c *BookshelfClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, FullMethodPing, in, opts)
}
