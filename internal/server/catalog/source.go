package catalog

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookshelf/internal/server/config"
)

// Source yields the books a catalog is built from. It is read once at
// startup; nothing is ever written back.
type Source interface {
	Load(ctx context.Context) ([]Book, error)
}

// Load reads src and builds a Catalog from it.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	books, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(books)
}

// NewSource picks the source named by cfg.CatalogSource. Sources holding
// connections implement io.Closer.
func NewSource(ctx context.Context, cfg *config.Config) (Source, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourceEmbedded, "":
		return EmbeddedSource{}, nil
	case config.CatalogSourceFile:
		return NewFileSource(cfg.CatalogFile), nil
	case config.CatalogSourcePostgres:
		return OpenPostgresSource(cfg.DatabaseDSN)
	case config.CatalogSourceS3:
		return NewS3Source(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}
