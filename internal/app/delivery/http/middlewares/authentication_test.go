package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/utils"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) CreateToken(doctorID string) (string, error) {
	args := m.Called(doctorID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) VerifyToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func TestAuthenticate(t *testing.T) {
	tokens := new(MockTokenManager)
	tokens.On("VerifyToken", "good-token").Return("665f1c2b9d1e8a0012345678", nil)
	tokens.On("VerifyToken", "expired-token").Return("", errors.New("token is expired"))

	middlewares := &Middlewares{Log: zap.NewNop(), TokenManager: tokens}
	handler := middlewares.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doctorID, err := utils.GetDoctorID(r.Context())
		require.NoError(t, err)
		w.Write([]byte(doctorID))
	}))

	t.Run("Valid Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "665f1c2b9d1e8a0012345678", rr.Body.String())
	})

	t.Run("Missing Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
	})

	t.Run("Empty Bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer ")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer expired-token")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}
	var seen string
	handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Contains(t, seen, constvars.REQUEST_ID_PREFIX)
	assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "client-id", seen)
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	middlewares := &Middlewares{Log: zap.NewNop()}
	handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
