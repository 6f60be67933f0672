package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"practice-service/internal/app/config"
	"practice-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequireSuperadminAPIKey(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKey: testAPIKey,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKeyAuth, ok := r.Context().Value(constvars.CONTEXT_API_KEY_AUTH).(bool)
		assert.True(t, ok, "api key flag should be set")
		assert.True(t, apiKeyAuth, "api key flag should be true")

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/charges/generate-monthly", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireSuperadminAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid API key")
		assert.Equal(t, "success", rr.Body.String(), "should return success message")
	})

	t.Run("Missing API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/charges/generate-monthly", nil)

		rr := httptest.NewRecorder()
		handler := middlewares.RequireSuperadminAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for missing API key")
	})

	t.Run("Invalid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/charges/generate-monthly", nil)
		req.Header.Set(constvars.HeaderAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		handler := middlewares.RequireSuperadminAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for invalid API key")
	})

	t.Run("Case Sensitivity", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/charges/generate-monthly", nil)
		req.Header.Set(constvars.HeaderAPIKey, "TEST-SUPERADMIN-API-KEY-12345")

		rr := httptest.NewRecorder()
		handler := middlewares.RequireSuperadminAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for case-mismatched API key")
	})

	t.Run("Whitespace in API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/charges/generate-monthly", nil)
		req.Header.Set(constvars.HeaderAPIKey, " "+testAPIKey+" ")

		rr := httptest.NewRecorder()
		handler := middlewares.RequireSuperadminAPIKey(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for API key with whitespace")
	})
}

func TestRequireSuperadminAPIKey_NoKeyConfigured(t *testing.T) {
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}

	req := httptest.NewRequest("POST", "/api/v1/charges/generate-monthly", nil)
	req.Header.Set(constvars.HeaderAPIKey, "anything")

	rr := httptest.NewRecorder()
	middlewares.RequireSuperadminAPIKey(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a configured key")
	})).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAPIKeyAuth_Optional(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-superadmin-api-key-12345"
	internalConfig := &config.InternalConfig{
		App: config.App{
			SuperadminAPIKey: testAPIKey,
		},
	}

	middlewares := &Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("No API Key - Should Pass", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/customers", nil)

		var captured context.Context
		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = r.Context()
			testHandler.ServeHTTP(w, r)
		}))
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK when no API key provided (optional middleware)")
		_, ok := captured.Value(constvars.CONTEXT_API_KEY_AUTH).(bool)
		assert.False(t, ok)
	})

	t.Run("Valid API Key - Should Pass", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/customers", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid API key")
		assert.Equal(t, "success", rr.Body.String(), "should return success message")
	})

	t.Run("Invalid API Key - Should Fail", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/customers", nil)
		req.Header.Set(constvars.HeaderAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		handler := middlewares.APIKeyAuth(testHandler)
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for invalid API key")
	})
}
