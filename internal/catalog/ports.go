package catalog

import (
	"context"

	"bookgraph/internal/book"
)

//go:generate mockgen -source=ports.go -destination=mock_source.go -package=catalog

// Source supplies the initial book sequence. It is called once at startup.
type Source interface {
	Load(ctx context.Context) ([]book.Book, error)
}
