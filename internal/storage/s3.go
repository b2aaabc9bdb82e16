// Package storage stores listing photos in S3-compatible object storage.
package storage

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Options configures an S3Client.
type S3Options struct {
	// Endpoint is host[:port] of an S3-compatible service such as MinIO.
	// Empty means AWS S3 itself.
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	// PublicBaseURL prefixes object keys to form public photo URLs
	// (e.g. a CDN). Derived from the endpoint and bucket when empty.
	PublicBaseURL string
}

// S3Client wraps the S3 client for uploads and pre-signed URLs.
type S3Client struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	publicBaseURL string
}

// NewS3Client creates a new S3 client configured for the given options.
func NewS3Client(opts S3Options) *S3Client {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		log.Fatalf("Failed to load S3 config: %v", err)
	}

	endpointURL := endpointURL(opts.Endpoint, opts.UseSSL)
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
			o.UsePathStyle = true // required for MinIO
		}
	})

	publicBase := opts.PublicBaseURL
	if publicBase == "" {
		publicBase = defaultPublicBaseURL(endpointURL, opts.Bucket, opts.Region)
	}

	if endpointURL != "" {
		log.Printf("Using S3 endpoint %s, bucket %s", endpointURL, opts.Bucket)
	}

	return &S3Client{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        opts.Bucket,
		publicBaseURL: strings.TrimRight(publicBase, "/") + "/",
	}
}

// GetPresignedPutURL generates a pre-signed URL for uploading an object.
// The uploader must send the same Content-Type.
func (s *S3Client) GetPresignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error) {
	request, err := s.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", err
	}

	return request.URL, nil
}

// PutObject uploads an object to storage.
func (s *S3Client) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	return err
}

// PublicURL returns the URL an uploaded object is served from.
func (s *S3Client) PublicURL(key string) string {
	return s.publicBaseURL + strings.TrimLeft(key, "/")
}

func endpointURL(endpoint string, useSSL bool) string {
	if endpoint == "" {
		return ""
	}
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

func defaultPublicBaseURL(endpointURL, bucket, region string) string {
	if endpointURL != "" {
		return strings.TrimRight(endpointURL, "/") + "/" + bucket
	}
	return "https://" + bucket + ".s3." + region + ".amazonaws.com"
}
