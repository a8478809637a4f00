package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// A malformed {id} is rejected before the service is reached, so the
// handler is mounted with no service at all.
func TestPatternHandler_RejectsMalformedID(t *testing.T) {
	t.Parallel()

	handler := NewPatternHandler(nil)

	r := chi.NewRouter()
	r.Get("/patterns/{id}", handler.Get)
	r.Put("/patterns/{id}", handler.Update)
	r.Delete("/patterns/{id}", handler.Delete)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "get", method: http.MethodGet, path: "/patterns/not-a-uuid"},
		{name: "update", method: http.MethodPut, path: "/patterns/12345", body: "{}"},
		{name: "delete", method: http.MethodDelete, path: "/patterns/xyz"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var req *http.Request
			if c.body != "" {
				req = httptest.NewRequest(c.method, c.path, strings.NewReader(c.body))
			} else {
				req = httptest.NewRequest(c.method, c.path, nil)
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), "id must be a valid UUID")
		})
	}
}
