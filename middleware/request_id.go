package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/blogem/editpilot/reqctx"
)

// RequestIDHeader carries the correlation id in both directions
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// RequestID assigns each request a correlation id, honoring a sane incoming one,
// and echoes it back in the response headers
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)

		ctx := reqctx.SetRequestID(r.Context(), id)
		ctx = reqctx.SetClientIP(ctx, getIPAddress(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
