package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFixtures(t *testing.T) {
	f := DefaultFixtures()
	assert.Len(t, f.StartingBooks, 8)
	assert.Len(t, f.Titles, 8)
	assert.Len(t, f.Authors, 8)
	assert.Len(t, f.Genres, 9)
	assert.Equal(t, "1234567891011", f.MissingISBN)
	assert.Equal(t, "978012345699", f.StartingBooks[0].ISBN)
	assert.Equal(t, 1986, f.StartingBooks[0].Year)
}

func TestLoadFixtures(t *testing.T) {
	t.Run("empty path uses embedded", func(t *testing.T) {
		f, err := LoadFixtures("")
		require.NoError(t, err)
		assert.Equal(t, DefaultFixtures(), f)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "books.yaml")
		data := []byte(`missing_isbn: "000"
titles: [A]
authors: [B]
genres: [C]
starting_books:
  - {title: T, author: B, year: 2001, genre: C, isbn: "1"}
`)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		f, err := LoadFixtures(path)
		require.NoError(t, err)
		assert.Equal(t, "000", f.MissingISBN)
		require.Len(t, f.StartingBooks, 1)
		assert.Equal(t, 2001, f.StartingBooks[0].Year)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFixtures(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestParseFixtures_Invalid(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		_, err := ParseFixtures([]byte("titles: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("empty pools and incomplete book", func(t *testing.T) {
		_, err := ParseFixtures([]byte(`starting_books:
  - {title: T, year: 2001, isbn: "1"}
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing_isbn is required")
		assert.Contains(t, err.Error(), "titles must not be empty")
		assert.Contains(t, err.Error(), "starting_books[0]")
		assert.Contains(t, err.Error(), "Author is required")
	})
}
