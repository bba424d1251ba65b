package grpc

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookshelf/internal/rpc"
)

func (s *GRPCServer) Register(ctx context.Context, req *rpc.RegisterRequest) (*rpc.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	if err := s.users.Register(ctx, req.Username, req.Password); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &rpc.RegisterResponse{Message: "User successfully registered. Now you can login"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *rpc.LoginRequest) (*rpc.LoginResponse, error) {

	token, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &rpc.LoginResponse{Message: "User successfully logged in", Token: token}, nil
}

func (s *GRPCServer) PutReview(ctx context.Context, req *rpc.PutReviewRequest) (*rpc.ReviewsResponse, error) {

	result, err := s.reviews.Upsert(ctx, accessTokenFromContext(ctx), req.ISBN, req.Review)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &rpc.ReviewsResponse{
		Message: fmt.Sprintf("Review for ISBN %s added/updated", req.ISBN),
		Reviews: result,
	}, nil
}

func (s *GRPCServer) DeleteReview(ctx context.Context, req *rpc.DeleteReviewRequest) (*rpc.ReviewsResponse, error) {

	result, err := s.reviews.Delete(ctx, accessTokenFromContext(ctx), req.ISBN)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &rpc.ReviewsResponse{
		Message: fmt.Sprintf("Review for ISBN %s deleted", req.ISBN),
		Reviews: result,
	}, nil
}

func (s *GRPCServer) GetReviews(ctx context.Context, req *rpc.GetReviewsRequest) (*rpc.ReviewsResponse, error) {

	result, err := s.reviews.Get(ctx, req.ISBN)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &rpc.ReviewsResponse{Reviews: result}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *rpc.PingRequest) (*rpc.PingResponse, error) {

	return &rpc.PingResponse{Status: "OK"}, nil

}
