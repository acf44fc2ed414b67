package simulation

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"booklibrary/internal/book"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures are the name pools random books are drawn from and the books
// every run starts with.
type Fixtures struct {
	MissingISBN   string      `yaml:"missing_isbn"`
	Titles        []string    `yaml:"titles"`
	Authors       []string    `yaml:"authors"`
	Genres        []string    `yaml:"genres"`
	StartingBooks []book.Book `yaml:"starting_books"`
}

// DefaultFixtures returns the embedded fixtures.
func DefaultFixtures() Fixtures {
	f, err := ParseFixtures(defaultFixtures)
	if err != nil {
		panic(fmt.Sprintf("embedded fixtures: %v", err))
	}
	return f
}

// LoadFixtures reads fixtures from path. An empty path selects the embedded
// defaults.
func LoadFixtures(path string) (Fixtures, error) {
	if path == "" {
		return ParseFixtures(defaultFixtures)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("read fixtures: %w", err)
	}
	f, err := ParseFixtures(data)
	if err != nil {
		return Fixtures{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseFixtures decodes and validates YAML fixtures.
func ParseFixtures(data []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := f.Validate(); err != nil {
		return Fixtures{}, err
	}
	return f, nil
}

// Validate checks that every pool is populated and that starting books have
// all their fields.
func (f Fixtures) Validate() error {
	var errs []error
	if f.MissingISBN == "" {
		errs = append(errs, errors.New("missing_isbn is required"))
	}
	if len(f.Titles) == 0 {
		errs = append(errs, errors.New("titles must not be empty"))
	}
	if len(f.Authors) == 0 {
		errs = append(errs, errors.New("authors must not be empty"))
	}
	if len(f.Genres) == 0 {
		errs = append(errs, errors.New("genres must not be empty"))
	}
	for i, b := range f.StartingBooks {
		if err := b.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("starting_books[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}
