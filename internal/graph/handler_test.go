package graph_test

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"bookgraph/internal/graph"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handler", func() {
	var handler http.Handler

	BeforeEach(func() {
		handler = graph.Handler(mustSchema(sampleBooks()))
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
		handler.ServeHTTP(w, r)
		return w
	}

	It("answers a query with the selected fields", func() {
		w := post(`{"query":"{ findById(id: 1) { title } }"}`)

		Expect(w.Code).Should(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).Should(ContainSubstring("application/json"))
		Expect(w.Body.String()).Should(MatchJSON(`{"data":{"findById":{"title":"A"}}}`))
	})

	It("passes variables through", func() {
		w := post(`{"query":"query($id: Int!) { findById(id: $id) { title } }","variables":{"id":99}}`)

		Expect(w.Code).Should(Equal(http.StatusOK))
		Expect(w.Body.String()).Should(MatchJSON(`{"data":{"findById":null}}`))
	})

	It("reports validation errors in the payload", func() {
		w := post(`{"query":"{ findById { title } }"}`)

		Expect(w.Code).Should(Equal(http.StatusOK))
		Expect(w.Body.String()).Should(ContainSubstring(`"errors"`))
	})

	It("rejects a body that is not JSON", func() {
		w := post(`not json`)
		Expect(w.Code).Should(Equal(http.StatusBadRequest))
	})
})
