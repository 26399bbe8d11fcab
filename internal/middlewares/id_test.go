package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestValidIDMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		expectedCode int
		expectNext   bool
	}{
		{name: "well formed", id: "64b7f0c2a1e4d3b2c1a09f8e", expectedCode: http.StatusOK, expectNext: true},
		{name: "upper case", id: "64B7F0C2A1E4D3B2C1A09F8E", expectedCode: http.StatusOK, expectNext: true},
		{name: "too short", id: "12345", expectedCode: http.StatusBadRequest},
		{name: "not hex", id: "zzzzzzzzzzzzzzzzzzzzzzzz", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req := httptest.NewRequest(http.MethodPut, "/api/jobs/"+tt.id, nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			ValidIDMiddleware("id")(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if !tt.expectNext {
				assert.JSONEq(t, `{"error":"invalid id"}`, rr.Body.String())
			}
		})
	}
}
