package book

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_Equal(t *testing.T) {
	a := New("Title A", "Author A", 1999, "Drama", "X1")
	b := New("Other Title", "Author B", 2001, "Poetry", "X1")
	c := New("Title A", "Author A", 1999, "Drama", "X2")

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestBook_String(t *testing.T) {
	b := New("It", "Stephen King", 1986, "Horror", "978012345699")
	assert.Equal(t, "It (Horror, Stephen King, 1986, 978012345699)", b.String())
}

func TestBook_NoValidationOnConstruction(t *testing.T) {
	b := New("", "", -5, "", "not-a-number")
	assert.Equal(t, -5, b.Year)
	assert.Equal(t, "not-a-number", b.ISBN)
}

func TestBook_Validate(t *testing.T) {
	t.Run("all fields present", func(t *testing.T) {
		b := New("T", "A", 0, "Drama", "X1")
		assert.NoError(t, b.Validate())
	})

	t.Run("missing fields", func(t *testing.T) {
		err := New("", "A", 1999, "", "X1").Validate()
		assert.Error(t, err)

		var verr ValidationError
		assert.True(t, errors.As(err, &verr))
		assert.Contains(t, err.Error(), "Title is required")
		assert.Contains(t, err.Error(), "Genre is required")
	})
}
