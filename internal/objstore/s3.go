// Package objstore uploads wallpaper images to S3-compatible object storage
// and derives their public URLs. Only the admin upload path uses it.
package objstore

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/muralhq/mural/internal/config"
	"github.com/muralhq/mural/internal/domain"
)

// S3Storage implements domain.ObjectStorage against any S3-compatible
// endpoint (path-style addressing, static credentials).
type S3Storage struct {
	client   *s3.Client
	bucket   string
	endpoint string
	logger   *slog.Logger
}

// NewS3Storage creates an S3 object storage client
func NewS3Storage(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*S3Storage, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(aws.CredentialsProviderFunc(
			func(ctx context.Context) (aws.Credentials, error) {
				return aws.Credentials{
					AccessKeyID:     cfg.AccessKeyID,
					SecretAccessKey: cfg.SecretAccessKey,
				}, nil
			},
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// Path-style keeps S3-compatible services working
		o.UsePathStyle = true
		o.Region = cfg.Region
	})

	return &S3Storage{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		logger:   logger,
	}, nil
}

// Upload stores data under path and returns its public URL
func (s *S3Storage) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("object upload failed", "path", path, "error", err)
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	return s.PublicURL(path), nil
}

// PublicURL derives the URL for a stored path. Derivation is deterministic:
// endpoint + bucket + path.
func (s *S3Storage) PublicURL(path string) string {
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, strings.TrimLeft(path, "/"))
}

var _ domain.ObjectStorage = (*S3Storage)(nil)
