package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/job-listings/internal/logger"
	"github.com/sbilibin2017/job-listings/internal/models"
)

// ValidIDMiddleware answers 400 when the named URL parameter is not a well
// formed store id. Mount it ahead of TxMiddleware so malformed ids never open
// a transaction.
func ValidIDMiddleware(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, param)
			if !models.IsValidID(id) {
				logger.Log.Warnw("malformed id", "id", id, "request_id", RequestIDFromContext(r.Context()))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"invalid id"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
