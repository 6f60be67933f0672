package controllers

import (
	"context"
	"errors"
	"net/http"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/exceptions"
	"practice-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const requestTimeout = 10 * time.Second

// requestContext derives the usecase context from the inbound request so that
// values set by middlewares survive and a disconnected client cancels work.
func requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := utils.ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func writeUsecaseError(log *zap.Logger, w http.ResponseWriter, operation, requestID string, err error) {
	log.Error(operation+" usecase error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)

	// a repository error already carries its own status, so the 504 is built fresh
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(context.DeadlineExceeded))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

// doctorFromRequest reads the authenticated doctor id, writing a 401 when the
// route was mounted without authentication.
func doctorFromRequest(log *zap.Logger, w http.ResponseWriter, r *http.Request) (string, bool) {
	doctorID, err := utils.GetDoctorID(r.Context())
	if err != nil {
		utils.BuildErrorResponse(log, w, exceptions.ErrTokenMissing(err))
		return "", false
	}
	return doctorID, true
}

func urlParamID(log *zap.Logger, w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if !primitive.IsValidObjectID(id) {
		utils.BuildErrorResponse(log, w, exceptions.ErrURLParamIDValidation(nil, name))
		return "", false
	}
	return id, true
}
