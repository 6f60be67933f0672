package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/exceptions"
	"practice-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic in any downstream handler into a 500 response.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			var err error
			switch x := rec.(type) {
			case string:
				err = errors.New(x)
			case error:
				err = x
			default:
				err = fmt.Errorf("unknown panic: %v", x)
			}

			m.Log.Error("Recovered from handler panic",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingMethodKey, r.Method),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
				zap.Stack("stack"),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerPanic(err))
		}()
		next.ServeHTTP(w, r)
	})
}
