package graph_test

import (
	"context"

	"bookgraph/internal/book"
	"bookgraph/internal/catalog"
	"bookgraph/internal/graph"

	graphql "github.com/graph-gophers/graphql-go"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resolver", func() {
	Context("constants", func() {
		It("returns 6 and 7 for any catalog", func() {
			for _, c := range []*catalog.Catalog{catalog.New(nil), catalog.New(sampleBooks()), nil} {
				r := graph.NewResolver(c)
				Expect(r.NumberSix()).Should(Equal(int32(6)))
				Expect(r.NumberSeven()).Should(Equal(int32(7)))
			}
		})
	})

	Context("books", func() {
		It("returns the catalog in load order", func() {
			r := graph.NewResolver(catalog.New(sampleBooks()))

			books := *r.Books()
			Expect(books).Should(HaveLen(2))
			Expect(*books[0].ID()).Should(Equal(int32(1)))
			Expect(*books[1].ID()).Should(Equal(int32(2)))
		})

		It("returns an empty list for an empty catalog", func() {
			r := graph.NewResolver(catalog.New(nil))
			Expect(*r.Books()).Should(BeEmpty())
		})
	})
})

var _ = Describe("Schema", func() {
	var schema *graphql.Schema

	BeforeEach(func() {
		schema = mustSchema(sampleBooks())
	})

	It("resolves the constant fields", func() {
		Expect(exec(schema, `{ numberSix numberSeven }`, nil)).
			Should(MatchDataInJSON(`{"numberSix":6,"numberSeven":7}`))
	})

	It("projects only the requested book fields", func() {
		Expect(exec(schema, `{ books { id } }`, nil)).
			Should(MatchDataInJSON(`{"books":[{"id":1},{"id":2}]}`))
	})

	It("returns every field of a book", func() {
		Expect(exec(schema, `{ books { id title author { name country } pages year genre } }`, nil)).
			Should(MatchDataInJSON(`{"books":[
				{"id":1,"title":"A","author":{"name":"X","country":"Y"},"pages":100,"year":2000,"genre":"Fiction"},
				{"id":2,"title":"B","author":{"name":"W","country":null},"pages":null,"year":null,"genre":null}
			]}`))
	})

	Context("findById", func() {
		It("finds a present id", func() {
			Expect(exec(schema, `{ findById(id: 1) { title } }`, nil)).
				Should(MatchDataInJSON(`{"findById":{"title":"A"}}`))
		})

		It("returns null for an absent id", func() {
			Expect(exec(schema, `{ findById(id: 99) { title } }`, nil)).
				Should(MatchDataInJSON(`{"findById":null}`))
		})

		It("accepts the id as a variable", func() {
			resp := exec(schema, `query Find($id: Int!) { findById(id: $id) { id author { name } } }`,
				map[string]interface{}{"id": float64(2)})
			Expect(resp).Should(MatchDataInJSON(`{"findById":{"id":2,"author":{"name":"W"}}}`))
		})

		It("returns the first match when ids repeat", func() {
			dup := mustSchema([]book.Book{
				{ID: 3, Title: book.String("first")},
				{ID: 3, Title: book.String("second")},
			})
			Expect(exec(dup, `{ findById(id: 3) { title } }`, nil)).
				Should(MatchDataInJSON(`{"findById":{"title":"first"}}`))
		})

		It("rejects a missing id before resolving", func() {
			resp := exec(schema, `{ findById { title } }`, nil)
			Expect(resp.Data).Should(BeEmpty())
			Expect(resp).Should(HaveErrorMessage(`"id"`))
		})

		It("rejects a non-integer id", func() {
			resp := exec(schema, `{ findById(id: "1") { title } }`, nil)
			Expect(resp.Errors).ShouldNot(BeEmpty())
		})
	})

	It("rejects unknown fields", func() {
		resp := exec(schema, `{ books { isbn } }`, nil)
		Expect(resp).Should(HaveErrorMessage(`"isbn"`))
	})

	It("does not expose mutations", func() {
		resp := exec(schema, `mutation { books { id } }`, nil)
		Expect(resp.Errors).ShouldNot(BeEmpty())
	})

	It("is idempotent", func() {
		const query = `{ books { id title } findById(id: 2) { title } numberSix }`
		first := exec(schema, query, nil)
		Expect(first.Errors).Should(BeEmpty())
		for i := 0; i < 3; i++ {
			Expect(exec(schema, query, nil)).Should(MatchDataInJSON(string(first.Data)))
		}
	})

	It("serves an empty catalog", func() {
		empty := mustSchema(nil)
		Expect(exec(empty, `{ books { id } numberSix numberSeven findById(id: 1) { id } }`, nil)).
			Should(MatchDataInJSON(`{"books":[],"numberSix":6,"numberSeven":7,"findById":null}`))
	})

	It("serves the embedded catalog", func() {
		books, err := catalog.EmbeddedSource().Load(context.Background())
		Expect(err).ShouldNot(HaveOccurred())

		embedded := mustSchema(books)
		resp := exec(embedded, `{ books { id } }`, nil)
		Expect(resp.Errors).Should(BeEmpty())

		ids := make([]map[string]int32, len(books))
		for i, b := range books {
			ids[i] = map[string]int32{"id": b.ID}
		}
		Expect(resp).Should(MatchDataInJSON(toJSON(map[string]interface{}{"books": ids})))
	})
})
