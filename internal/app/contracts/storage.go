package contracts

import (
	"context"
	"io"
	"time"
)

type UploadObjectInput struct {
	BucketName  string
	ObjectKey   string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Storage interface {
	UploadFile(ctx context.Context, input *UploadObjectInput) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
}
