package storage

import (
	"chanv-service/internal/app/contracts"
	"chanv-service/internal/pkg/exceptions"
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) UploadFile(ctx context.Context, input *contracts.UploadObjectInput) (string, error) {
	_, err := m.MinioClient.PutObject(ctx, input.BucketName, input.ObjectKey, input.Body, input.Size, minio.PutObjectOptions{
		ContentType: input.ContentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, input.BucketName)
	}

	return input.ObjectKey, nil
}

func (m *minioStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	presignedURL, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, expiryTime, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioPresignedURL(err, bucketName)
	}
	return presignedURL.String(), nil
}
