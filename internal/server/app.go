// Package server wires the configuration, catalog, services and transports
// together and runs them until a signal or context cancellation arrives.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/bookshelf/internal/logging"
	"github.com/dmitrijs2005/bookshelf/internal/server/auth"
	"github.com/dmitrijs2005/bookshelf/internal/server/catalog"
	"github.com/dmitrijs2005/bookshelf/internal/server/config"
	"github.com/dmitrijs2005/bookshelf/internal/server/httpapi"
	"github.com/dmitrijs2005/bookshelf/internal/server/reviews"
	"github.com/dmitrijs2005/bookshelf/internal/server/users"

	gs "github.com/dmitrijs2005/bookshelf/internal/server/grpc"
)

type App struct {
	config        *config.Config
	logger        logging.Logger
	userService   *users.Service
	reviewService *reviews.Service
	books         *catalog.Catalog
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	if c.UsesInsecureSecret() {
		logger.Warn(ctx, "using the built-in development secret; set JWT_SECRET before exposing this server")
	}

	src, err := catalog.NewSource(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("catalog source error: %w", err)
	}
	if closer, ok := src.(io.Closer); ok {
		defer closer.Close()
	}

	books, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("catalog init error: %w", err)
	}
	logger.Info(ctx, "Catalog loaded", "source", c.CatalogSource, "books", books.Len())

	tokens := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration)
	us := users.NewService(users.NewMemoryRepository(), auth.NewBcryptHasher(c.BcryptCost), tokens, logger)
	rs := reviews.NewService(tokens, reviews.NewStore(books), logger)

	return &App{config: c, logger: logger, userService: us, reviewService: rs, books: books}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	handler := httpapi.NewHandler(app.userService, app.reviewService, app.books, app.logger)
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, handler.Routes(), app.logger)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.reviewService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or one of
// the servers fails. Either server failing stops the other.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}
