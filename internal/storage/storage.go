// Package storage wraps the S3-compatible object store holding uploaded media.
package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tablecraft/tablecraft/internal/config"
)

// ErrNotConfigured is returned when object storage is disabled in the config.
var ErrNotConfigured = errors.New("object storage is not configured")

// Service provides upload/delete access to the media bucket.
type Service struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// New creates a storage service from the configuration. Returns nil without
// error when storage is disabled; callers must treat a nil service as
// ErrNotConfigured.
func New(cfg config.Storage) (*Service, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &Service{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// EnsureBucket creates the media bucket when it does not exist yet.
func (s *Service) EnsureBucket(ctx context.Context) error {
	if s == nil {
		return ErrNotConfigured
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

// Upload stores an object under the given key.
func (s *Service) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if s == nil {
		return ErrNotConfigured
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})

	return err
}

// Delete removes an object by key.
func (s *Service) Delete(ctx context.Context, key string) error {
	if s == nil {
		return ErrNotConfigured
	}

	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

// URL returns the public URL of an object.
func (s *Service) URL(key string) string {
	if s == nil {
		return ""
	}

	return s.baseURL + "/" + key
}
