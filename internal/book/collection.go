package book

import (
	"fmt"
	"iter"
	"strings"
)

// Collection is an ordered sequence of books kept in insertion order.
type Collection struct {
	books []Book
}

// NewCollection creates a collection holding the given books in order.
func NewCollection(books ...Book) *Collection {
	c := &Collection{books: make([]Book, 0, len(books))}
	c.books = append(c.books, books...)
	return c
}

// Append adds b to the end. Duplicates are not checked.
func (c *Collection) Append(b Book) {
	c.books = append(c.books, b)
}

// Extend appends every book in order.
func (c *Collection) Extend(books ...Book) {
	c.books = append(c.books, books...)
}

// Remove deletes the first book equal to b.
func (c *Collection) Remove(b Book) error {
	_, err := c.Take(b)
	return err
}

// Take deletes the first book equal to b and returns the stored book, which
// may differ from b in every field but the ISBN.
func (c *Collection) Take(b Book) (Book, error) {
	for i, existing := range c.books {
		if existing.Equal(b) {
			c.books = append(c.books[:i], c.books[i+1:]...)
			return existing, nil
		}
	}
	return Book{}, fmt.Errorf("remove %s: %w", b.ISBN, ErrNotFound)
}

// At returns the book at position i.
func (c *Collection) At(i int) (Book, error) {
	if i < 0 || i >= len(c.books) {
		return Book{}, fmt.Errorf("at %d (len %d): %w", i, len(c.books), ErrOutOfRange)
	}
	return c.books[i], nil
}

// Slice returns a new collection over books[start:end]. Bounds are clamped to
// the collection, so an empty or inverted range yields an empty collection.
func (c *Collection) Slice(start, end int) *Collection {
	start = clamp(start, len(c.books))
	end = clamp(end, len(c.books))
	if start >= end {
		return NewCollection()
	}
	return NewCollection(c.books[start:end]...)
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Len returns the number of books.
func (c *Collection) Len() int {
	return len(c.books)
}

// All iterates the books in insertion order.
func (c *Collection) All() iter.Seq[Book] {
	return func(yield func(Book) bool) {
		for _, b := range c.books {
			if !yield(b) {
				return
			}
		}
	}
}

// Contains reports whether a book with b's ISBN is present.
func (c *Collection) Contains(b Book) bool {
	for _, existing := range c.books {
		if existing.Equal(b) {
			return true
		}
	}
	return false
}

// Union returns a new collection with every distinct ISBN from c and other.
// Callers must not rely on the order of the result.
func (c *Collection) Union(other *Collection) *Collection {
	set := make(map[string]Book, len(c.books)+len(other.books))
	for _, b := range append(c.Books(), other.books...) {
		if _, ok := set[b.Key()]; !ok {
			set[b.Key()] = b
		}
	}

	out := &Collection{books: make([]Book, 0, len(set))}
	for _, b := range set {
		out.books = append(out.books, b)
	}
	return out
}

// Clone returns an independently mutable copy.
func (c *Collection) Clone() *Collection {
	return NewCollection(c.books...)
}

// Books returns a copy of the underlying slice.
func (c *Collection) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

func (c *Collection) String() string {
	parts := make([]string, len(c.books))
	for i, b := range c.books {
		parts[i] = b.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
