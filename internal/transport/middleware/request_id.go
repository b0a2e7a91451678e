package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/glossary-backend/pkg/ctxutil"
)

// RequestIDHeader is the header used to propagate a request identifier.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that assigns a request ID to every request:
// the incoming header value is reused when present, otherwise a UUID is
// generated. The ID is stored in the context and echoed in the response.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
