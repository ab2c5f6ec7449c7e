// Copyright (c) 2026 Moneta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package storage provides read access to the coin photograph bucket.

Photographs are uploaded out of band under their image id (see pkg/imageid)
with a ".jpg" suffix. The API never streams image bytes itself; it hands
clients short-lived presigned GET URLs instead.
*/
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectSuffix is appended to an image id to form its object key.
const ObjectSuffix = ".jpg"

// defaultURLTTL applies when PresignGet is called with a non-positive ttl.
const defaultURLTTL = 15 * time.Minute

// Config holds the bucket coordinates. Empty credentials fall back to the
// default AWS credential chain.
type Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string
}

// ImageStore is an S3-compatible (AWS, R2, MinIO) photograph bucket.
type ImageStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// New builds an [ImageStore] from cfg.
func New(ctx context.Context, cfg Config) (*ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket required")
	}

	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	loadOptions := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOptions = append(loadOptions, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(options *s3.Options) {
		options.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			options.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return newImageStore(client, cfg.Bucket), nil
}

func newImageStore(client *s3.Client, bucket string) *ImageStore {
	return &ImageStore{client: client, presign: s3.NewPresignClient(client), bucket: bucket}
}

// Key maps an image id to its object key.
func Key(imageID string) string {
	return imageID + ObjectSuffix
}

// Exists reports whether the photograph for imageID has been uploaded.
func (store *ImageStore) Exists(ctx context.Context, imageID string) (bool, error) {
	_, err := store.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(Key(imageID)),
	})
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, fmt.Errorf("storage: head %s: %w", imageID, err)
}

// PresignGet returns a GET URL for imageID valid for ttl.
func (store *ImageStore) PresignGet(ctx context.Context, imageID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultURLTTL
	}

	request, err := store.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(Key(imageID)),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("storage: presign %s: %w", imageID, err)
	}
	return request.URL, nil
}

// Ping checks that the bucket is reachable with the configured credentials.
func (store *ImageStore) Ping(ctx context.Context) error {
	_, err := store.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(store.bucket)})
	if err != nil {
		return fmt.Errorf("storage: head bucket: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var responseError *awshttp.ResponseError
	return errors.As(err, &responseError) && responseError.HTTPStatusCode() == http.StatusNotFound
}
