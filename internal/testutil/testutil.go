package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"bookgraph/internal/book"
)

// TestBooks is the two-book catalog used by handler and routing tests.
var TestBooks = []book.Book{
	{
		ID:     1,
		Title:  book.String("A"),
		Author: book.Author{Name: book.String("X"), Country: book.String("Y")},
		Pages:  book.Int(100),
		Year:   book.Int(2000),
		Genre:  book.String("Fiction"),
	},
	{
		ID:     2,
		Title:  book.String("B"),
		Author: book.Author{Name: book.String("W")},
	},
}

// GraphQLRequest is the JSON body accepted by the query endpoint.
type GraphQLRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// NewGraphQLRequest builds a POST request for path carrying query.
func NewGraphQLRequest(path, query string, variables map[string]interface{}) *http.Request {
	body, _ := json.Marshal(GraphQLRequest{Query: query, Variables: variables})
	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// GraphQLResponse mirrors the engine's response envelope.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   GraphQLResponse
	Raw    []byte
}

// RecordHTTPResponse decodes a recorded GraphQL response.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	raw, _ := io.ReadAll(result.Body)

	var body GraphQLResponse
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   body,
		Raw:    raw,
	}
}
