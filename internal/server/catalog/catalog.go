// Package catalog holds the read-only book collection and the sources it can
// be seeded from.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookshelf/internal/common"
)

// Catalog is immutable after New, so it needs no locking.
type Catalog struct {
	books map[string]Book
	order []string
}

// New builds a catalog. ISBNs must be non-empty and unique.
func New(books []Book) (*Catalog, error) {
	c := &Catalog{
		books: make(map[string]Book, len(books)),
		order: make([]string, 0, len(books)),
	}

	for _, b := range books {
		if strings.TrimSpace(b.ISBN) == "" {
			return nil, errors.New("book without isbn")
		}
		if _, dup := c.books[b.ISBN]; dup {
			return nil, fmt.Errorf("duplicate isbn %q", b.ISBN)
		}
		c.books[b.ISBN] = b
		c.order = append(c.order, b.ISBN)
	}

	return c, nil
}

func (c *Catalog) Len() int { return len(c.order) }

func (c *Catalog) Exists(isbn string) bool {
	_, ok := c.books[isbn]
	return ok
}

// Get returns common.ErrBookNotFound for unknown ISBNs.
func (c *Catalog) Get(isbn string) (Book, error) {
	b, ok := c.books[isbn]
	if !ok {
		return Book{}, common.ErrBookNotFound
	}
	return b, nil
}

// All returns every book in load order.
func (c *Catalog) All() []Book {
	out := make([]Book, 0, len(c.order))
	for _, isbn := range c.order {
		out = append(out, c.books[isbn])
	}
	return out
}

// ByAuthor returns books whose author equals name, ignoring case.
func (c *Catalog) ByAuthor(name string) []Book {
	return c.filter(func(b Book) bool { return strings.EqualFold(b.Author, name) })
}

// ByTitle returns books whose title equals title, ignoring case.
func (c *Catalog) ByTitle(title string) []Book {
	return c.filter(func(b Book) bool { return strings.EqualFold(b.Title, title) })
}

func (c *Catalog) filter(match func(Book) bool) []Book {
	var out []Book
	for _, isbn := range c.order {
		if b := c.books[isbn]; match(b) {
			out = append(out, b)
		}
	}
	return out
}
