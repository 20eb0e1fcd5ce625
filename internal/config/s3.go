// internal/config/s3.go
package config

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3 configuration for the catalog export
type S3Config struct {
	Client *s3.Client
	Bucket string
	Prefix string
}

// NewS3Config creates a new S3 configuration. Static credentials are used
// when both keys are set, otherwise the default AWS credential chain applies.
func NewS3Config(ctx context.Context) (*S3Config, error) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		return nil, errors.New("S3_BUCKET_NAME is required")
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(getEnv("AWS_REGION", "eu-west-3")),
	}
	if key, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY"); key != "" && secret != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &S3Config{
		Client: s3.NewFromConfig(cfg),
		Bucket: bucket,
		Prefix: getEnv("S3_SNAPSHOT_PREFIX", "snapshots"),
	}, nil
}
