package contracts

import "context"

type Storage interface {
	// UploadObject stores content under objectName and returns the object key.
	UploadObject(ctx context.Context, bucketName, objectName string, content []byte, contentType string) (string, error)
}
