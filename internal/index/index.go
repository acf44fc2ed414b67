// Package index maps keys (ISBN, author, year) to buckets of books. Every
// accessor that exposes a bucket hands out a copy, so callers can never
// mutate an index through a returned value.
package index

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"booklibrary/internal/book"
)

// ErrKeyNotFound is returned by Get when the key has no bucket.
var ErrKeyNotFound = errors.New("key not found")

// Index is a keyed store of book buckets. Keys are iterated in the order they
// were first inserted. A key is present only while its bucket is non-empty.
type Index[K comparable] struct {
	buckets map[K]*book.Collection
	order   []K
}

// New creates an empty index.
func New[K comparable]() *Index[K] {
	return &Index[K]{buckets: make(map[K]*book.Collection)}
}

// Set stores a copy of c under key. An empty c removes the key.
func (idx *Index[K]) Set(key K, c *book.Collection) {
	if c == nil || c.Len() == 0 {
		idx.delete(key)
		return
	}
	if _, ok := idx.buckets[key]; !ok {
		idx.order = append(idx.order, key)
	}
	idx.buckets[key] = c.Clone()
}

// Get returns a copy of the bucket for key.
func (idx *Index[K]) Get(key K) (*book.Collection, error) {
	c, ok := idx.buckets[key]
	if !ok {
		return nil, fmt.Errorf("%v: %w", key, ErrKeyNotFound)
	}
	return c.Clone(), nil
}

// GetOrDefault returns a copy of the bucket for key, or a copy of def when
// the key is absent. A nil def means an empty collection.
func (idx *Index[K]) GetOrDefault(key K, def *book.Collection) *book.Collection {
	if c, ok := idx.buckets[key]; ok {
		return c.Clone()
	}
	if def == nil {
		return book.NewCollection()
	}
	return def.Clone()
}

// Has reports whether key currently has a bucket.
func (idx *Index[K]) Has(key K) bool {
	_, ok := idx.buckets[key]
	return ok
}

// Len returns the number of keys.
func (idx *Index[K]) Len() int {
	return len(idx.buckets)
}

// Keys returns the present keys in insertion order.
func (idx *Index[K]) Keys() []K {
	return slices.Clone(idx.order)
}

// Items iterates key/bucket pairs in insertion order. Buckets are copies.
func (idx *Index[K]) Items() iter.Seq2[K, *book.Collection] {
	return func(yield func(K, *book.Collection) bool) {
		for _, key := range idx.Keys() {
			c, ok := idx.buckets[key]
			if !ok {
				continue
			}
			if !yield(key, c.Clone()) {
				return
			}
		}
	}
}

// bucket returns the live bucket for key. Only policies in this package may
// mutate it.
func (idx *Index[K]) bucket(key K) (*book.Collection, bool) {
	c, ok := idx.buckets[key]
	return c, ok
}

// ensure returns the live bucket for key, creating an empty one if needed.
// Callers must add to it before returning control.
func (idx *Index[K]) ensure(key K) *book.Collection {
	if c, ok := idx.buckets[key]; ok {
		return c
	}
	c := book.NewCollection()
	idx.buckets[key] = c
	idx.order = append(idx.order, key)
	return c
}

func (idx *Index[K]) delete(key K) {
	if _, ok := idx.buckets[key]; !ok {
		return
	}
	delete(idx.buckets, key)
	if i := slices.Index(idx.order, key); i >= 0 {
		idx.order = slices.Delete(idx.order, i, i+1)
	}
}
