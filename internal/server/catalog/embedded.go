package catalog

import (
	"context"
	_ "embed"
)

//go:embed books.json
var seedBooks []byte

// EmbeddedSource serves the built-in ten-book seed.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(context.Context) ([]Book, error) {
	return decodeBooks(seedBooks, formatJSON)
}
