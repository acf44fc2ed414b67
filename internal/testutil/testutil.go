package testutil

import (
	"bytes"
	"log/slog"

	"booklibrary/internal/book"
)

// TestBook is a sample book for testing
var TestBook = book.New("Test Book Title", "Test Author", 1999, "Drama", "978-0-123456-78-9")

// TestBooks is a small catalog covering shared authors and years
var TestBooks = []book.Book{
	book.New("It", "Stephen King", 1986, "Horror", "978012345699"),
	book.New("The Shining", "Stephen King", 1977, "Novel", "978098765431"),
	book.New("Metro 2033", "Dmitry Glukhovsky", 2005, "Fiction", "9780543210987"),
	book.New("To Kill a Mockingbird", "Harper Lee", 1960, "Novel", "978012345703"),
	book.New("Boyhood", "Leo Tolstoy", 1854, "Novel", "978012345707"),
	book.New("Carrie", "Stephen King", 1974, "horror", "978012345720"),
}

// ISBNs returns the ISBNs of c in iteration order
func ISBNs(c *book.Collection) []string {
	out := []string{}
	for b := range c.All() {
		out = append(out, b.ISBN)
	}
	return out
}

// NewBufferLogger returns a text logger writing into the returned buffer
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, buf
}
