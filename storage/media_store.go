// file: storage/media_store.go

package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	appconfig "go-vidshare-api/config"
	"go-vidshare-api/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// IMediaStore abstracts the object store holding video files, thumbnails and
// profile images. Upload returns the publicly reachable URL for the object.
type IMediaStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (url string, key string, err error)
	Delete(ctx context.Context, key string) error
}

// S3MediaStore implements IMediaStore over an S3-compatible bucket.
type S3MediaStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3MediaStore builds the S3 client from AppConfig. A non-empty endpoint
// switches to path-style addressing for MinIO-compatible deployments.
func NewS3MediaStore(ctx context.Context) (*S3MediaStore, error) {
	cfg := appconfig.AppConfig.S3

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Log.WithField("bucket", cfg.Bucket).Info("Media store initialized")
	return &S3MediaStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: cfg.PublicURL,
	}, nil
}

// Upload stores the object under a random key inside folder, preserving the
// original file extension.
func (s *S3MediaStore) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, string, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), path.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Log.WithError(err).WithField("key", key).Error("Failed to upload object to media store")
		return "", "", fmt.Errorf("failed to upload object: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.publicURL, key), key, nil
}

func (s *S3MediaStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Log.WithError(err).WithField("key", key).Error("Failed to delete object from media store")
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
