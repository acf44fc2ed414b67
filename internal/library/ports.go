package library

import (
	"booklibrary/internal/book"
)

//go:generate mockgen -destination=mocks/mock_catalog.go -package=mocks booklibrary/internal/library Catalog

// Catalog defines the contract the simulator drives.
type Catalog interface {
	AddBook(b book.Book) error
	RemoveBook(b book.Book) bool
	SearchByISBN(isbn string) *book.Collection
	SearchByAuthor(author string) *book.Collection
	SearchByYear(year int) *book.Collection
	SearchByGenre(genre string) *book.Collection
	AllBooks() *book.Collection
	Authors() []string
	Statistics() Stats
}

var _ Catalog = (*Library)(nil)
