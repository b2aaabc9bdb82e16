package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		useSSL   bool
		want     string
	}{
		{"empty means AWS", "", true, ""},
		{"plain host", "localhost:9000", false, "http://localhost:9000"},
		{"plain host with ssl", "minio.example.com", true, "https://minio.example.com"},
		{"already a URL", "https://s3.example.com", false, "https://s3.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, endpointURL(tt.endpoint, tt.useSSL))
		})
	}
}

func TestS3Client_PublicURL(t *testing.T) {
	tests := []struct {
		name string
		opts S3Options
		want string
	}{
		{
			name: "explicit base url",
			opts: S3Options{Bucket: "photos", Region: "us-east-1", PublicBaseURL: "https://cdn.example.com/"},
			want: "https://cdn.example.com/listings/u/a.jpg",
		},
		{
			name: "minio path style",
			opts: S3Options{Endpoint: "localhost:9000", Bucket: "photos", Region: "us-east-1", AccessKey: "k", SecretKey: "s"},
			want: "http://localhost:9000/photos/listings/u/a.jpg",
		},
		{
			name: "aws virtual host",
			opts: S3Options{Bucket: "photos", Region: "ap-south-1", AccessKey: "k", SecretKey: "s"},
			want: "https://photos.s3.ap-south-1.amazonaws.com/listings/u/a.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewS3Client(tt.opts)

			assert.Equal(t, tt.want, client.PublicURL("listings/u/a.jpg"))
		})
	}
}

func TestS3Client_GetPresignedPutURL(t *testing.T) {
	client := NewS3Client(S3Options{
		Endpoint:  "localhost:9000",
		AccessKey: "minioadmin",
		SecretKey: "minioadmin",
		Bucket:    "photos",
		Region:    "us-east-1",
	})

	raw, err := client.GetPresignedPutURL(context.Background(), "listings/u/a.jpg", "image/jpeg", 15*time.Minute)

	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/photos/listings/u/a.jpg", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.Contains(t, u.Query().Get("X-Amz-SignedHeaders"), "content-type")
}
