package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrNoSource is returned by Load when no source is configured.
var ErrNoSource = errors.New("catalog source is not configured")

// Load reads src exactly once and freezes the result into a Catalog.
func Load(ctx context.Context, src Source, log zerolog.Logger) (*Catalog, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	books, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	c := New(books)
	if dups := c.DuplicateIDs(); len(dups) > 0 {
		log.Warn().Ints32("ids", dups).Msg("catalog contains duplicate book ids, first entry wins")
	}
	log.Info().Int("books", c.Len()).Msg("catalog loaded")
	return c, nil
}
