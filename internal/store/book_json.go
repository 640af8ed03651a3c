package store

import (
	"context"
	"sync"

	"libraryapi/internal/catalog"
)

// BookJSON is the flat-file catalog repository.
type BookJSON struct {
	mu    sync.Mutex
	path  string
	books []catalog.Book
}

func NewBookJSON(path string) (*BookJSON, error) {
	s := &BookJSON{path: path}
	if err := loadJSONFile(path, &s.books); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *BookJSON) GetByID(_ context.Context, id int64) (catalog.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.books {
		if b.ID == id {
			return b, nil
		}
	}
	return catalog.Book{}, catalog.ErrNotFound
}

func (s *BookJSON) List(_ context.Context) ([]catalog.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]catalog.Book, len(s.books))
	copy(out, s.books)
	return out, nil
}

func (s *BookJSON) Add(_ context.Context, b *catalog.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = nextID(len(s.books), func(i int) int64 { return s.books[i].ID })
	s.books = append(s.books, *b)
	return saveJSONFile(s.path, s.books)
}

func (s *BookJSON) SetStatus(_ context.Context, id int64, status catalog.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].ID == id {
			s.books[i].Status = status
			return saveJSONFile(s.path, s.books)
		}
	}
	return catalog.ErrNotFound
}

// nextID allocates max(existing)+1, or 1 for an empty collection.
func nextID(n int, id func(int) int64) int64 {
	var max int64
	for i := 0; i < n; i++ {
		if v := id(i); v > max {
			max = v
		}
	}
	return max + 1
}
