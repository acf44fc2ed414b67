package index

import (
	"fmt"

	"booklibrary/internal/book"
)

// ISBNIndex holds exactly one book per ISBN.
type ISBNIndex struct {
	*Index[string]
}

// NewISBNIndex creates an empty ISBN index.
func NewISBNIndex() *ISBNIndex {
	return &ISBNIndex{Index: New[string]()}
}

// Add indexes b under its ISBN. If the ISBN is already present the index is
// left unchanged and book.ErrDuplicate is returned.
func (idx *ISBNIndex) Add(b book.Book) error {
	if idx.Has(b.ISBN) {
		return fmt.Errorf("isbn %s: %w", b.ISBN, book.ErrDuplicate)
	}
	idx.ensure(b.ISBN).Append(b)
	return nil
}

// Remove drops the bucket for isbn. It returns book.ErrNotFound if there was
// none.
func (idx *ISBNIndex) Remove(isbn string) error {
	if !idx.Has(isbn) {
		return fmt.Errorf("isbn %s: %w", isbn, book.ErrNotFound)
	}
	idx.delete(isbn)
	return nil
}
