package catalog

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"bookgraph/internal/book"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBooks() []book.Book {
	return []book.Book{
		{
			ID:     1,
			Title:  book.String("A"),
			Author: book.Author{Name: book.String("X"), Country: book.String("Y")},
			Pages:  book.Int(100),
			Year:   book.Int(2000),
			Genre:  book.String("Fiction"),
		},
		{ID: 2, Title: book.String("B")},
	}
}

func TestCatalog_Books(t *testing.T) {
	t.Run("keeps load order", func(t *testing.T) {
		c := New(testBooks())

		got := c.Books()
		require.Len(t, got, 2)
		assert.Equal(t, int32(1), got[0].ID)
		assert.Equal(t, int32(2), got[1].ID)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("empty", func(t *testing.T) {
		c := New(nil)

		assert.Empty(t, c.Books())
		assert.Equal(t, 0, c.Len())
	})

	t.Run("isolated from caller slice", func(t *testing.T) {
		in := testBooks()
		c := New(in)
		in[0].ID = 42

		out := c.Books()
		out[1].ID = 43

		assert.Equal(t, int32(1), c.Books()[0].ID)
		assert.Equal(t, int32(2), c.Books()[1].ID)
	})
}

func TestCatalog_FindByID(t *testing.T) {
	c := New(testBooks())

	t.Run("found", func(t *testing.T) {
		b, ok := c.FindByID(1)
		require.True(t, ok)
		assert.Equal(t, "A", *b.Title)
		assert.Equal(t, "X", *b.Author.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, ok := c.FindByID(99)
		assert.False(t, ok)
	})

	t.Run("duplicate ids return the first entry", func(t *testing.T) {
		dup := New([]book.Book{
			{ID: 5, Title: book.String("first")},
			{ID: 6, Title: book.String("other")},
			{ID: 5, Title: book.String("second")},
		})

		b, ok := dup.FindByID(5)
		require.True(t, ok)
		assert.Equal(t, "first", *b.Title)
		assert.Equal(t, []int32{5}, dup.DuplicateIDs())
	})
}

func TestLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("calls the source once", func(t *testing.T) {
		src := NewMockSource(ctrl)
		src.EXPECT().Load(gomock.Any()).Return(testBooks(), nil).Times(1)

		c, err := Load(context.Background(), src, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("source error", func(t *testing.T) {
		src := NewMockSource(ctrl)
		src.EXPECT().Load(gomock.Any()).Return(nil, context.DeadlineExceeded)

		c, err := Load(context.Background(), src, zerolog.Nop())
		assert.Nil(t, c)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := Load(context.Background(), nil, zerolog.Nop())
		assert.ErrorIs(t, err, ErrNoSource)
	})

	t.Run("duplicate ids are logged and the first entry wins", func(t *testing.T) {
		var buf bytes.Buffer
		src := NewMockSource(ctrl)
		src.EXPECT().Load(gomock.Any()).Return([]book.Book{
			{ID: 5, Title: book.String("first")},
			{ID: 6, Title: book.String("other")},
			{ID: 5, Title: book.String("second")},
		}, nil)

		c, err := Load(context.Background(), src, zerolog.New(&buf))
		require.NoError(t, err)

		assert.Contains(t, buf.String(), `"ids":[5]`)
		assert.Contains(t, buf.String(), "first entry wins")
		assert.Contains(t, buf.String(), `"books":3`)

		b, ok := c.FindByID(5)
		require.True(t, ok)
		assert.Equal(t, "first", *b.Title)
	})

	t.Run("unique ids log no warning", func(t *testing.T) {
		var buf bytes.Buffer
		src := NewMockSource(ctrl)
		src.EXPECT().Load(gomock.Any()).Return(testBooks(), nil)

		_, err := Load(context.Background(), src, zerolog.New(&buf))
		require.NoError(t, err)
		assert.NotContains(t, buf.String(), "duplicate")
	})
}
