package book

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrDuplicate is returned when a book with the same ISBN is already indexed.
var ErrDuplicate = errors.New("book already exists")

// ErrOutOfRange is returned for invalid positional access into a Collection.
var ErrOutOfRange = errors.New("index out of range")

// Book represents a book entity. Two books with the same ISBN are the same
// logical book regardless of their other fields.
type Book struct {
	Title  string `json:"title" yaml:"title" validate:"required"`
	Author string `json:"author" yaml:"author" validate:"required"`
	Year   int    `json:"year" yaml:"year"`
	Genre  string `json:"genre" yaml:"genre" validate:"required"`
	ISBN   string `json:"isbn" yaml:"isbn" validate:"required"`
}

// New creates a book. No validation is performed.
func New(title, author string, year int, genre, isbn string) Book {
	return Book{
		Title:  title,
		Author: author,
		Year:   year,
		Genre:  genre,
		ISBN:   isbn,
	}
}

// Equal reports whether b and other share an ISBN.
func (b Book) Equal(other Book) bool {
	return b.ISBN == other.ISBN
}

// Key returns the value books are hashed and deduplicated by.
func (b Book) Key() string {
	return b.ISBN
}

func (b Book) String() string {
	return fmt.Sprintf("%s (%s, %s, %d, %s)", b.Title, b.Genre, b.Author, b.Year, b.ISBN)
}
