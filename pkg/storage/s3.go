package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	internalConfig "github.com/snapfest/snapfest-backend/internal/config"
	"github.com/snapfest/snapfest-backend/internal/models"
	"github.com/snapfest/snapfest-backend/pkg/utils"
)

// S3Storage keeps blobs in an S3-compatible bucket under
// <eventID>/uploads/<storedName>. Event records and metadata logs stay
// on the local filesystem regardless of the blob driver.
type S3Storage struct {
	client *s3.Client
	bucket string
}

func NewS3Storage(cfg internalConfig.S3Config) (*S3Storage, error) {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(cfg.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	}
	if cfg.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: cfg.Endpoint}, nil
		})
		opts = append(opts, awsConfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &S3Storage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
	}, nil
}

func (s *S3Storage) Put(ctx context.Context, eventID, originalName string, content io.Reader) (string, error) {
	if !validSegment(eventID) {
		return "", models.ErrBlobNotFound
	}
	storedName := utils.NewStoredName(originalName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(eventID, storedName)),
		Body:   content,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to upload to s3: %v", models.ErrStorage, err)
	}
	return storedName, nil
}

func (s *S3Storage) Get(ctx context.Context, eventID, storedName string) (io.ReadCloser, error) {
	if !validSegment(eventID) || !validSegment(storedName) {
		return nil, models.ErrBlobNotFound
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(eventID, storedName)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, models.ErrBlobNotFound
		}
		return nil, fmt.Errorf("%w: failed to download from s3: %v", models.ErrStorage, err)
	}
	return out.Body, nil
}

func (s *S3Storage) Delete(ctx context.Context, eventID, storedName string) error {
	if !validSegment(eventID) || !validSegment(storedName) {
		return models.ErrBlobNotFound
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(eventID, storedName)),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to delete from s3: %v", models.ErrStorage, err)
	}
	return nil
}

func (s *S3Storage) DeleteEvent(ctx context.Context, eventID string) error {
	if !validSegment(eventID) {
		return models.ErrBlobNotFound
	}
	prefix := eventID + "/"

	var continuation *string
	for {
		page, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: continuation,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to list s3 namespace: %v", models.ErrStorage, err)
		}
		if len(page.Contents) == 0 {
			return nil
		}

		objects := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			objects = append(objects, types.ObjectIdentifier{Key: obj.Key})
		}
		_, err = s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(s.bucket),
			Delete: &types.Delete{Objects: objects},
		})
		if err != nil {
			return fmt.Errorf("%w: failed to delete s3 namespace: %v", models.ErrStorage, err)
		}

		if page.IsTruncated == nil || !*page.IsTruncated {
			return nil
		}
		continuation = page.NextContinuationToken
	}
}

func (s *S3Storage) objectKey(eventID, storedName string) string {
	return eventID + "/" + uploadsDirName + "/" + storedName
}
