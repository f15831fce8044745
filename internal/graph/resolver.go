package graph

import (
	"bookgraph/internal/catalog"
)

// Resolver is the root Query resolver. It only reads from the catalog it was
// built with.
type Resolver struct {
	catalog *catalog.Catalog
}

func NewResolver(c *catalog.Catalog) *Resolver {
	if c == nil {
		c = catalog.New(nil)
	}
	return &Resolver{catalog: c}
}

// Books resolves Query.books.
func (r *Resolver) Books() *[]*BookResolver {
	books := r.catalog.Books()
	out := make([]*BookResolver, len(books))
	for i := range books {
		out[i] = &BookResolver{book: books[i]}
	}
	return &out
}

// NumberSix resolves Query.numberSix.
func (r *Resolver) NumberSix() int32 {
	return 6
}

// NumberSeven resolves Query.numberSeven.
func (r *Resolver) NumberSeven() int32 {
	return 7
}

type findByIDArgs struct {
	ID int32
}

// FindByID resolves Query.findById. A missing book is null, not an error.
func (r *Resolver) FindByID(args findByIDArgs) *BookResolver {
	b, ok := r.catalog.FindByID(args.ID)
	if !ok {
		return nil
	}
	return &BookResolver{book: b}
}
