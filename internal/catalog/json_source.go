package catalog

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io"
	"os"

	"bookgraph/internal/book"

	jsoniter "github.com/json-iterator/go"
)

//go:embed data/books.json
var bundled embed.FS

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONSource decodes a JSON array of books. Open is called on every Load.
type JSONSource struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// EmbeddedSource serves the data set compiled into the binary.
func EmbeddedSource() *JSONSource {
	return &JSONSource{
		Name: "embedded",
		Open: func() (io.ReadCloser, error) {
			return bundled.Open("data/books.json")
		},
	}
}

// FileSource reads the catalog from a JSON file on disk.
func FileSource(path string) *JSONSource {
	return &JSONSource{
		Name: path,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// BytesSource decodes an in-memory document. Mostly useful in tests.
func BytesSource(data []byte) *JSONSource {
	return &JSONSource{
		Name: "bytes",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func (s *JSONSource) Load(ctx context.Context) ([]book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := s.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Name, err)
	}
	defer r.Close()

	var books []book.Book
	if err := json.NewDecoder(r).Decode(&books); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Name, err)
	}
	return books, nil
}
