// Package grpc serves the Bookshelf service over gRPC for the CLI client.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/rpc"
	"github.com/dmitrijs2005/bookshelf/internal/server/reviews"
	"github.com/dmitrijs2005/bookshelf/internal/server/users"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	address string
	users   *users.Service
	reviews *reviews.Service
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us *users.Service, rs *reviews.Service) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		reviews: rs,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	rpc.RegisterBookshelfServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
