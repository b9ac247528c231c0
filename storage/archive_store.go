// Package storage keeps generated archives in an S3 bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ContentType of every stored archive.
const ContentType = "application/zip"

// ErrNoLocation is returned when neither a public bucket URL nor the upload location is known.
var ErrNoLocation = errors.New("no public location for uploaded archive")

//go:generate moq -rm -pkg storage_test -out moq_s3_test.go . S3Client

// S3Client is the subset of the dp-s3 client used to store archives.
type S3Client interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, options ...func(*manager.Uploader)) (*manager.UploadOutput, error)
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

// ArchiveStore uploads archives to a bucket and returns the URL they are served from.
type ArchiveStore struct {
	client    S3Client
	bucket    string
	publicURL *url.URL
}

// NewArchiveStore creates an ArchiveStore. When publicURL is nil the URL reported by S3 is used.
func NewArchiveStore(client S3Client, bucket string, publicURL *url.URL) *ArchiveStore {
	return &ArchiveStore{
		client:    client,
		bucket:    bucket,
		publicURL: publicURL,
	}
}

// Upload stores the archive read from r under key.
func (s *ArchiveStore) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	logData := log.Data{"bucket": s.bucket, "key": key}

	out, err := s.client.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(ContentType),
	})
	if err != nil {
		log.Error(ctx, "could not upload archive", err, logData)
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	loc, err := s.location(key, out)
	if err != nil {
		return "", err
	}

	logData["location"] = loc
	log.Info(ctx, "archive uploaded", logData)
	return loc, nil
}

func (s *ArchiveStore) location(key string, out *manager.UploadOutput) (string, error) {
	if s.publicURL != nil && s.publicURL.Host != "" {
		return s.publicURL.JoinPath(key).String(), nil
	}
	if out != nil && out.Location != "" {
		return out.Location, nil
	}
	return "", ErrNoLocation
}

// Checker reports the health of the bucket.
func (s *ArchiveStore) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	return s.client.Checker(ctx, state)
}
