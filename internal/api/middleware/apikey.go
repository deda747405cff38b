package middleware

import (
	"net/http"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/s91capital/Investor-Backoffice-Backend/internal/api/response"
)

// APIKeyTTL is the maximum age of a sweep token. External schedulers mint a
// fresh token per invocation; a leaked token stops working within the hour.
const APIKeyTTL = time.Hour

// NewAPIKey creates a middleware that requires a valid fernet token in the
// X-API-Key header. The token must verify against the configured key and be
// younger than APIKeyTTL. When no key is configured the protected endpoint
// is disabled entirely.
func NewAPIKey(key string) func(http.Handler) http.Handler {
	keys, err := fernet.DecodeKeys(key)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" || err != nil {
				response.RespondError(w, http.StatusServiceUnavailable, "endpoint disabled", "API key verification not configured")
				return
			}

			token := r.Header.Get("X-API-Key")
			if token == "" {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
				return
			}

			if fernet.VerifyAndDecrypt([]byte(token), APIKeyTTL, keys) == nil {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
