package index

import (
	"fmt"

	"booklibrary/internal/book"
)

// GroupIndex buckets books by a key derived from each book, such as the
// author or the publication year. A bucket never holds two books with the
// same ISBN, and a bucket is dropped as soon as it becomes empty.
type GroupIndex[K comparable] struct {
	*Index[K]
	name  string
	keyOf func(book.Book) K
}

// AuthorIndex groups books by author.
type AuthorIndex = GroupIndex[string]

// YearIndex groups books by publication year.
type YearIndex = GroupIndex[int]

// NewGroupIndex creates an index keyed by keyOf. The name only appears in
// error messages.
func NewGroupIndex[K comparable](name string, keyOf func(book.Book) K) *GroupIndex[K] {
	return &GroupIndex[K]{
		Index: New[K](),
		name:  name,
		keyOf: keyOf,
	}
}

// NewAuthorIndex creates an empty index keyed by author.
func NewAuthorIndex() *AuthorIndex {
	return NewGroupIndex("author", func(b book.Book) string { return b.Author })
}

// NewYearIndex creates an empty index keyed by publication year.
func NewYearIndex() *YearIndex {
	return NewGroupIndex("year", func(b book.Book) int { return b.Year })
}

// Add files b under its key unless the bucket already contains its ISBN.
func (idx *GroupIndex[K]) Add(b book.Book) {
	bucket := idx.ensure(idx.keyOf(b))
	if !bucket.Contains(b) {
		bucket.Append(b)
	}
}

// Remove takes b out of its bucket and prunes the bucket if it ends up empty.
// It returns book.ErrNotFound when the key or the book is absent.
func (idx *GroupIndex[K]) Remove(b book.Book) error {
	key := idx.keyOf(b)
	bucket, ok := idx.bucket(key)
	if !ok {
		return fmt.Errorf("%s %v: %w", idx.name, key, book.ErrNotFound)
	}
	if err := bucket.Remove(b); err != nil {
		return fmt.Errorf("%s %v: %w", idx.name, key, err)
	}
	if bucket.Len() == 0 {
		idx.delete(key)
	}
	return nil
}

// GetAll returns a copy of the bucket for key, or an empty collection.
func (idx *GroupIndex[K]) GetAll(key K) *book.Collection {
	return idx.GetOrDefault(key, nil)
}
