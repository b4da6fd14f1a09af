package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/scholardesk/research-hub-api/pkg/config"
)

// ErrNotFound is returned when the requested key does not exist in the bucket.
var ErrNotFound = errors.New("object not found")

// ObjectStorage wraps an S3-compatible bucket holding uploaded paper files.
type ObjectStorage struct {
	client *s3.Client
	bucket string
}

// Object bundles a stored blob's stream with the metadata the API re-serves.
type Object struct {
	Body        io.ReadCloser
	ContentType string
	ETag        string
	Size        int64
}

// NewObjectStorage builds a client for the configured endpoint. Custom
// endpoints (R2, MinIO) require path-style addressing.
func NewObjectStorage(ctx context.Context, cfg config.StorageConfig) (*ObjectStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load storage credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &ObjectStorage{client: client, bucket: cfg.Bucket}, nil
}

// Put streams the body into the bucket under key, keeping the original
// filename in the content disposition so downloads carry it back.
func (s *ObjectStorage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType, filename string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if filename != "" {
		input.ContentDisposition = aws.String(fmt.Sprintf("attachment; filename=%q", filename))
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// Get returns the object stream and metadata, or ErrNotFound.
func (s *ObjectStorage) Get(ctx context.Context, key string) (*Object, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}

	obj := &Object{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
		ETag:        aws.ToString(out.ETag),
		Size:        aws.ToInt64(out.ContentLength),
	}
	return obj, nil
}

// Delete removes the object. Deleting a missing key is not an error.
func (s *ObjectStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}
