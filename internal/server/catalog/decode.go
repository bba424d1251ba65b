package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFromPath(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported catalog file extension %q", filepath.Ext(path))
	}
}

// decodeBooks accepts either a list of books or a mapping from ISBN to book.
func decodeBooks(data []byte, f format) ([]Book, error) {
	switch f {
	case formatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '{' {
			var m map[string]Book
			if err := json.Unmarshal(trimmed, &m); err != nil {
				return nil, fmt.Errorf("decode catalog: %w", err)
			}
			return fromMap(m)
		}
		var list []Book
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		return list, nil

	case formatYAML:
		var list []Book
		if err := yaml.Unmarshal(data, &list); err == nil {
			return list, nil
		}
		var m map[string]Book
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("decode catalog: %w", err)
		}
		return fromMap(m)

	default:
		return nil, fmt.Errorf("unknown catalog format %d", f)
	}
}

func fromMap(m map[string]Book) ([]Book, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return isbnLess(keys[i], keys[j]) })

	books := make([]Book, 0, len(m))
	for _, k := range keys {
		b := m[k]
		if b.ISBN != "" && b.ISBN != k {
			return nil, fmt.Errorf("isbn %q stored under key %q", b.ISBN, k)
		}
		b.ISBN = k
		books = append(books, b)
	}
	return books, nil
}

// isbnLess orders numeric keys numerically ("2" < "10") and everything else
// lexically.
func isbnLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
