package controllers

import (
	"context"
	"errors"
	"net/http/httptest"
	"practice-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteUsecaseError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Bare Deadline", context.DeadlineExceeded, 504},
		{"Deadline Wrapped By Repository", exceptions.ErrMongoDBFindDocument(context.DeadlineExceeded), 504},
		{"Deadline Wrapped Twice", exceptions.ErrMongoDBFindDocument(exceptions.ErrMongoDBUpdateDocument(context.DeadlineExceeded)), 504},
		{"Not Found Keeps Status", exceptions.ErrCustomerNotFound(nil), 404},
		{"Driver Failure", exceptions.ErrMongoDBFindDocument(errors.New("connection reset")), 500},
		{"Plain Error", errors.New("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			writeUsecaseError(zap.NewNop(), rr, "TestController.Action", "PRCTC_SVC_test", tt.err)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
		})
	}
}
