package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/aprilfamily/cookbook-backend/config"
)

// ArchiveService retains original upload bytes in S3 before the local copy
// is removed. The service is optional; moderation runs without it.
type ArchiveService struct {
	client *s3.Client
	bucket string
}

// NewArchiveService wraps an S3 configuration. Returns nil when s3cfg is nil.
func NewArchiveService(s3cfg *config.S3Config) *ArchiveService {
	if s3cfg == nil {
		return nil
	}
	return &ArchiveService{
		client: s3cfg.Client,
		bucket: s3cfg.BucketName,
	}
}

// Store uploads the document bytes under key.
func (s *ArchiveService) Store(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}
