package middlewares

import (
	"context"
	"net/http"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/exceptions"
	"practice-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

// Authenticate requires a bearer token and stores the doctor id it carries on
// the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		doctorID, err := m.TokenManager.VerifyToken(token)
		if err != nil {
			m.Log.Info("Authenticate rejected token",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_DOCTOR_ID_KEY, doctorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
