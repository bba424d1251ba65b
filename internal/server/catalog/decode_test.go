package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBooks(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  format
		want    []Book
		wantErr bool
	}{
		{
			name:   "json list",
			data:   `[{"isbn":"a","title":"T","author":"A"}]`,
			format: formatJSON,
			want:   []Book{{ISBN: "a", Title: "T", Author: "A"}},
		},
		{
			name:   "json map sorted numerically",
			data:   `{"10":{"title":"Ten","author":"X"},"2":{"title":"Two","author":"Y"}}`,
			format: formatJSON,
			want:   []Book{{ISBN: "2", Title: "Two", Author: "Y"}, {ISBN: "10", Title: "Ten", Author: "X"}},
		},
		{
			name:    "json map with conflicting isbn",
			data:    `{"1":{"isbn":"2","title":"T","author":"A"}}`,
			format:  formatJSON,
			wantErr: true,
		},
		{
			name:    "broken json",
			data:    `[{`,
			format:  formatJSON,
			wantErr: true,
		},
		{
			name:   "yaml list",
			data:   "- isbn: a\n  title: T\n  author: A\n",
			format: formatYAML,
			want:   []Book{{ISBN: "a", Title: "T", Author: "A"}},
		},
		{
			name:   "yaml map",
			data:   "b:\n  title: B\n  author: Y\na:\n  title: A\n  author: X\n",
			format: formatYAML,
			want:   []Book{{ISBN: "a", Title: "A", Author: "X"}, {ISBN: "b", Title: "B", Author: "Y"}},
		},
		{
			name:    "yaml scalar",
			data:    "just a string",
			format:  formatYAML,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeBooks([]byte(tt.data), tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmbeddedSource(t *testing.T) {
	c, err := Load(context.Background(), EmbeddedSource{})
	require.NoError(t, err)

	assert.Equal(t, 10, c.Len())
	b, err := c.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Things Fall Apart", b.Title)
	assert.Equal(t, "Chinua Achebe", b.Author)

	all := c.All()
	assert.Equal(t, "1", all[0].ISBN)
	assert.Equal(t, "10", all[9].ISBN)
	assert.Len(t, c.ByAuthor("Unknown"), 4)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "books.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"isbn":"1","title":"T","author":"A"}]`), 0o600))

	yamlPath := filepath.Join(dir, "books.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- isbn: \"7\"\n  title: Saga\n  author: Unknown\n"), 0o600))

	books, err := NewFileSource(jsonPath).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Book{{ISBN: "1", Title: "T", Author: "A"}}, books)

	books, err = NewFileSource(yamlPath).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Book{{ISBN: "7", Title: "Saga", Author: "Unknown"}}, books)

	_, err = NewFileSource(filepath.Join(dir, "books.txt")).Load(context.Background())
	assert.Error(t, err, "unknown extension")

	_, err = NewFileSource(filepath.Join(dir, "absent.json")).Load(context.Background())
	assert.Error(t, err)
}

func TestLoad_RejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dup.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"isbn":"1"},{"isbn":"1"}]`), 0o600))

	_, err := Load(context.Background(), NewFileSource(path))
	assert.Error(t, err)
}
