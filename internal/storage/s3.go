package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appconfig "menu-eva/internal/config"
)

// s3Backend stores uploads as public objects in an S3 bucket.
type s3Backend struct {
	client *s3.Client
	bucket string
	region string
	prefix string
	logger zerolog.Logger
}

// NewS3 creates an S3-backed storage backend.
func NewS3(ctx context.Context, cfg appconfig.S3Config, logger zerolog.Logger) (Backend, error) {
	logger = logger.With().Str("component", "s3-storage").Logger()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", cfg.Bucket).
		Str("region", cfg.Region).
		Msg("S3 storage initialised")

	return &s3Backend{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
		region: cfg.Region,
		prefix: cfg.Prefix,
		logger: logger,
	}, nil
}

func (b *s3Backend) Name() string { return "s3" }

// Store uploads the object under <prefix><kind>/<uuid><ext> and returns
// the bucket's public URL for it.
func (b *s3Backend) Store(ctx context.Context, up Upload) (string, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	key := fmt.Sprintf("%s%s/%s%s", b.prefix, filepath.Base(up.Kind), uuid.New().String(), ext)

	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(up.Data),
		ContentType: aws.String(up.ContentType),
	})
	if err != nil {
		b.logger.Error().
			Err(err).
			Str("bucket", b.bucket).
			Str("key", key).
			Msg("failed to put object to S3")
		return "", fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", b.bucket, key, err)
	}

	b.logger.Debug().Str("key", key).Int("bytes", len(up.Data)).Msg("object uploaded")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", b.bucket, b.region, key), nil
}
