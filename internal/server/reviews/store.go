// Package reviews keeps per-book reviews and enforces that only the
// authenticated author of a review can change it.
package reviews

import (
	"maps"
	"sync"

	"github.com/dmitrijs2005/bookshelf/internal/common"
)

// Lookup answers whether a book exists. *catalog.Catalog satisfies it.
type Lookup interface {
	Exists(isbn string) bool
}

// Store maps isbn to username to review text. Writes to one isbn are
// serialized by that isbn's own lock; different isbns never contend.
type Store struct {
	books Lookup

	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	reviews map[string]string
}

func NewStore(books Lookup) *Store {
	return &Store{
		books:   books,
		entries: make(map[string]*entry),
	}
}

func (s *Store) entry(isbn string) (*entry, error) {
	if !s.books.Exists(isbn) {
		return nil, common.ErrBookNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[isbn]
	if !ok {
		e = &entry{reviews: make(map[string]string)}
		s.entries[isbn] = e
	}
	return e, nil
}

// Upsert sets username's review of isbn and returns a copy of every review
// of that book.
func (s *Store) Upsert(isbn, username, text string) (map[string]string, error) {
	e, err := s.entry(isbn)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.reviews[username] = text
	return maps.Clone(e.reviews), nil
}

// Delete removes username's review of isbn and returns the remaining ones.
// It fails with common.ErrReviewNotFound when there is nothing to remove.
func (s *Store) Delete(isbn, username string) (map[string]string, error) {
	e, err := s.entry(isbn)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.reviews[username]; !ok {
		return nil, common.ErrReviewNotFound
	}
	delete(e.reviews, username)
	return maps.Clone(e.reviews), nil
}

// Get returns a copy of the reviews of isbn, empty if there are none.
func (s *Store) Get(isbn string) (map[string]string, error) {
	e, err := s.entry(isbn)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return maps.Clone(e.reviews), nil
}
