package service

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/KaveeshaKaru/investiAI/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ArchiveService stores the original uploaded documents in object storage
// so the source material outlives the extraction. It is optional; when
// archiving is disabled callers get a nil service and skip it.
type ArchiveService struct {
	client *minio.Client
	bucket string
}

// NewArchiveService connects to the configured object store. Returns
// (nil, nil) when archiving is disabled.
func NewArchiveService(cfg *config.ArchiveConfig) (*ArchiveService, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &ArchiveService{client: client, bucket: cfg.Bucket}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *ArchiveService) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// ObjectName builds the archive key for one uploaded document.
func ObjectName(docType, documentID, fileName string) string {
	return path.Join(docType, documentID, fileName)
}

// Store archives the original document bytes under its object name.
func (s *ArchiveService) Store(ctx context.Context, docType, documentID, fileName string, data []byte) error {
	objectName := ObjectName(docType, documentID, fileName)
	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: DetectMIMEType(fileName),
		})
	if err != nil {
		return fmt.Errorf("failed to archive document: %w", err)
	}
	return nil
}

// Delete removes an archived document.
func (s *ArchiveService) Delete(ctx context.Context, docType, documentID, fileName string) error {
	err := s.client.RemoveObject(ctx, s.bucket,
		ObjectName(docType, documentID, fileName), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete archived document: %w", err)
	}
	return nil
}
