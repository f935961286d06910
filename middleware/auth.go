package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/blogem/editpilot/models"
	"github.com/blogem/editpilot/reqctx"
)

// APIKeyHeader carries the shared secret
const APIKeyHeader = "X-Api-Key"

// RequireSharedSecret rejects requests whose X-Api-Key header does not match secret
func RequireSharedSecret(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(APIKeyHeader)

			if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				logger.Warn("Rejected unauthenticated request",
					zap.String("path", r.URL.Path),
					zap.String("ip", reqctx.GetClientIP(r.Context())))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(models.ErrorResponse{
					ID:    reqctx.GetRequestID(r.Context()),
					Error: "unauthorized",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
