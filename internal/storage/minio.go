// Package storage provides MinIO-backed object storage for item images.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"papergenius_backend/platform/config"
	"papergenius_backend/platform/logger"
)

// ImageStore uploads item cover images and returns their public URLs.
type ImageStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
	log     *logger.Logger
}

// NewImageStore connects to MinIO and ensures the image bucket exists.
// Returns nil when MinIO is not configured so callers can run without it.
func NewImageStore(ctx context.Context, cfg config.MinIOConfig, log *logger.Logger) (*ImageStore, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, nil
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect minio: %w", err)
	}

	bucket := cfg.GetMinIOBucketItemImages()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
		}
		log.Info("created image bucket", "bucket", bucket)
	}

	baseURL := strings.TrimSuffix(cfg.GetMinIOPublicBaseURL(), "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.GetMinIOUseSSL() {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, cfg.GetMinIOEndpoint())
	}

	return &ImageStore{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
		log:     log,
	}, nil
}

// UploadImage stores an image under a random object name, keeping the original
// extension, and returns the public URL.
func (s *ImageStore) UploadImage(ctx context.Context, fileName, contentType string, body io.Reader, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	objectName := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.NewString(), ext)

	uploadCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.client.PutObject(uploadCtx, s.bucket, objectName, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, objectName), nil
}
