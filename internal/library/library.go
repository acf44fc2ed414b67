// Package library is the catalog facade. It owns the master collection of
// books and keeps the ISBN, author and year indexes consistent with it.
package library

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"booklibrary/internal/book"
	"booklibrary/internal/index"
)

// Stats summarises the catalog.
type Stats struct {
	TotalBooks     int            `json:"total_books"`
	UniqueAuthors  int            `json:"unique_authors"`
	YearsRange     []int          `json:"years_range"`
	BooksPerAuthor map[string]int `json:"books_per_author"`
}

// Library is an in-memory catalog. It is not safe for concurrent use.
type Library struct {
	books   *book.Collection
	isbns   *index.ISBNIndex
	authors *index.AuthorIndex
	years   *index.YearIndex
}

// New creates an empty library.
func New() *Library {
	return &Library{
		books:   book.NewCollection(),
		isbns:   index.NewISBNIndex(),
		authors: index.NewAuthorIndex(),
		years:   index.NewYearIndex(),
	}
}

// AddBook appends b to the catalog and updates every index. If b's ISBN is
// already in the catalog nothing changes and book.ErrDuplicate is returned.
func (l *Library) AddBook(b book.Book) error {
	if err := l.isbns.Add(b); err != nil {
		return err
	}
	l.books.Append(b)
	l.authors.Add(b)
	l.years.Add(b)

	return nil
}

// RemoveBook removes b (matched by ISBN) from the catalog and every index.
// It returns false, leaving the indexes untouched, if b is not in the catalog.
// The indexes are updated from the stored book, so b's other fields are
// ignored.
func (l *Library) RemoveBook(b book.Book) bool {
	stored, err := l.books.Take(b)
	if err != nil {
		return false
	}

	// Index misses are tolerated here.
	_ = l.isbns.Remove(stored.ISBN)
	_ = l.authors.Remove(stored)
	_ = l.years.Remove(stored)

	return true
}

// SearchByISBN returns the book with the given ISBN, if any.
func (l *Library) SearchByISBN(isbn string) *book.Collection {
	return l.isbns.GetOrDefault(isbn, nil)
}

// SearchByAuthor returns all books by author.
func (l *Library) SearchByAuthor(author string) *book.Collection {
	return l.authors.GetAll(author)
}

// SearchByYear returns all books published in year.
func (l *Library) SearchByYear(year int) *book.Collection {
	return l.years.GetAll(year)
}

// SearchByGenre scans the catalog for books whose genre matches genre,
// ignoring case.
func (l *Library) SearchByGenre(genre string) *book.Collection {
	found := book.NewCollection()
	for b := range l.books.All() {
		if strings.EqualFold(b.Genre, genre) {
			found.Append(b)
		}
	}
	return found
}

// AllBooks returns a snapshot of every book in the catalog.
func (l *Library) AllBooks() *book.Collection {
	return l.books.Clone()
}

// Len returns the number of books in the catalog.
func (l *Library) Len() int {
	return l.books.Len()
}

// Authors returns the distinct authors currently indexed.
func (l *Library) Authors() []string {
	return l.authors.Keys()
}

// Years returns the distinct publication years currently indexed, sorted.
func (l *Library) Years() []int {
	years := l.years.Keys()
	slices.Sort(years)
	return years
}

// Statistics returns totals, distinct authors and years, and per-author counts.
func (l *Library) Statistics() Stats {
	perAuthor := make(map[string]int, l.authors.Len())
	for author, books := range l.authors.Items() {
		perAuthor[author] = books.Len()
	}

	years := l.Years()
	if years == nil {
		years = []int{}
	}

	return Stats{
		TotalBooks:     l.books.Len(),
		UniqueAuthors:  l.authors.Len(),
		YearsRange:     years,
		BooksPerAuthor: perAuthor,
	}
}

// CheckConsistency verifies that every catalog book is reachable through all
// three indexes and that the indexes hold nothing else.
func (l *Library) CheckConsistency() error {
	var errs []error
	for b := range l.books.All() {
		if !l.isbns.Has(b.ISBN) {
			errs = append(errs, fmt.Errorf("isbn %s missing from isbn index", b.ISBN))
		}
		if !l.authors.GetAll(b.Author).Contains(b) {
			errs = append(errs, fmt.Errorf("isbn %s missing from author %q", b.ISBN, b.Author))
		}
		if !l.years.GetAll(b.Year).Contains(b) {
			errs = append(errs, fmt.Errorf("isbn %s missing from year %d", b.ISBN, b.Year))
		}
	}
	for isbn, bucket := range l.isbns.Items() {
		first, _ := bucket.At(0)
		if bucket.Len() != 1 || !l.books.Contains(first) {
			errs = append(errs, fmt.Errorf("isbn index entry %s not in catalog", isbn))
		}
	}
	return errors.Join(errs...)
}

func (l *Library) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total books in library: %d\n", l.books.Len())
	i := 1
	for b := range l.books.All() {
		fmt.Fprintf(&sb, "%d. %s (%s, %s, %d)\n", i, b.Title, b.Genre, b.Author, b.Year)
		i++
	}
	return sb.String()
}
