package catalog

import (
	"context"
	"fmt"
	"os"
)

// FileSource reads a JSON or YAML catalog; the format follows the extension.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(context.Context) ([]Book, error) {
	f, err := formatFromPath(s.path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	return decodeBooks(data, f)
}
