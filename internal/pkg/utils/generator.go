package utils

import (
	"fmt"
	"practice-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateFileName(prefix, owner, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, owner, timestamp, fileExtension)
}

func GenerateLockValue() string {
	return uuid.NewString()
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}
