package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"practice-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRateLimiter_BlocksAfterBudget(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Minute, time.Hour)
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5555"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234"))
}

func TestConditionalRateLimit_RoutesByAPIKeyFlag(t *testing.T) {
	m := &Middlewares{Log: zap.NewNop()}
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Limiter", name)
				next.ServeHTTP(w, r)
			})
		}
	}
	handler := m.ConditionalRateLimit(tag("normal"), tag("api-key"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "normal", rr.Header().Get("X-Limiter"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_API_KEY_AUTH, true))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "api-key", rr.Header().Get("X-Limiter"))
}

func TestPositiveOr(t *testing.T) {
	assert.Equal(t, 7, positiveOr(7, 20))
	assert.Equal(t, 20, positiveOr(0, 20))
	assert.Equal(t, 20, positiveOr(-3, 20))
}
