package graph

import (
	"context"
	_ "embed"
	"net/http"

	"bookgraph/internal/catalog"

	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/rs/zerolog"
)

// SDL is the GraphQL schema served by the API.
//
//go:embed schema.graphql
var SDL string

const defaultMaxParallelism = 10

// Options tunes NewSchema. A zero MaxParallelism uses the default of 10;
// Logger receives recovered resolver panics.
type Options struct {
	MaxParallelism int
	Logger         zerolog.Logger
}

// panicLogger reports resolver panics through zerolog. It satisfies the
// engine's log.Logger interface.
type panicLogger struct {
	log zerolog.Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.Error().Interface("panic", value).Msg("graphql resolver panic")
}

// NewSchema parses the SDL and binds it to a resolver over c.
func NewSchema(c *catalog.Catalog, opts Options) (*graphql.Schema, error) {
	parallelism := opts.MaxParallelism
	if parallelism <= 0 {
		parallelism = defaultMaxParallelism
	}
	return graphql.ParseSchema(SDL, NewResolver(c),
		graphql.MaxParallelism(parallelism),
		graphql.Logger(panicLogger{log: opts.Logger}),
	)
}

// Handler serves POST requests with a JSON body of query, operationName and
// variables.
func Handler(schema *graphql.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}
