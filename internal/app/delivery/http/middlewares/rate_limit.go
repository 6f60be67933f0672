package middlewares

import (
	"net/http"
	"practice-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/httprate"
)

const defaultRequestsPerSecond = 20

// ConditionalRateLimit sends requests already marked by APIKeyAuth through
// apiKeyLimiter and everything else through normalLimiter.
func (m *Middlewares) ConditionalRateLimit(normalLimiter, apiKeyLimiter func(next http.Handler) http.Handler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		normal := normalLimiter(next)
		apiKey := apiKeyLimiter(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isAPIKeyRequest(r) {
				apiKey.ServeHTTP(w, r)
				return
			}
			normal.ServeHTTP(w, r)
		})
	}
}

// CreateRateLimiters builds the per-second limiters from config. Superadmin
// traffic is budgeted per endpoint so a batch job does not starve other calls.
func (m *Middlewares) CreateRateLimiters() (normalLimiter, apiKeyLimiter func(next http.Handler) http.Handler) {
	normalLimiter = httprate.LimitByIP(positiveOr(m.InternalConfig.App.MaxRequests, defaultRequestsPerSecond), time.Second)
	apiKeyLimiter = httprate.Limit(
		positiveOr(m.InternalConfig.App.SuperadminAPIKeyRateLimit, defaultRequestsPerSecond),
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
	)
	return normalLimiter, apiKeyLimiter
}

func isAPIKeyRequest(r *http.Request) bool {
	apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH).(bool)
	return ok && apiKeyAuth
}

func positiveOr(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
