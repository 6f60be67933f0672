package middlewares

import (
	"context"
	"crypto/subtle"
	"net/http"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/exceptions"
	"practice-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// APIKeyAuth marks requests carrying a valid superadmin key. Requests without
// the header pass through untouched.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if !m.validAPIKey(apiKey) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) RequireSuperadminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)

		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		if !m.validAPIKey(apiKey) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		m.Log.Info("API Key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
		)

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validAPIKey rejects everything while no superadmin key is configured.
func (m *Middlewares) validAPIKey(apiKey string) bool {
	expected := m.InternalConfig.App.SuperadminAPIKey
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) == 1
}
