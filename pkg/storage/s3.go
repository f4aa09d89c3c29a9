package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// WasabiEndpoints maps regions to Wasabi endpoints
var WasabiEndpoints = map[string]string{
	"us-east-1":      "s3.us-east-1.wasabisys.com",
	"us-east-2":      "s3.us-east-2.wasabisys.com",
	"us-west-1":      "s3.us-west-1.wasabisys.com",
	"eu-central-1":   "s3.eu-central-1.wasabisys.com",
	"eu-west-1":      "s3.eu-west-1.wasabisys.com",
	"ap-northeast-1": "s3.ap-northeast-1.wasabisys.com",
	"ap-southeast-1": "s3.ap-southeast-1.wasabisys.com",
	"ap-southeast-2": "s3.ap-southeast-2.wasabisys.com",
}

const defaultWasabiEndpoint = "s3.ap-southeast-1.wasabisys.com"

// S3Store uploads to AWS S3 or Wasabi.
type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewS3Store(ctx context.Context, cfg Config) (*S3Store, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	endpoint := ""
	var client *s3.Client
	switch cfg.Provider {
	case ProviderWasabi:
		endpoint = WasabiEndpoints[cfg.Region]
		if endpoint == "" {
			endpoint = defaultWasabiEndpoint
		}
		// Wasabi requires custom endpoint and path-style addressing
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String("https://" + endpoint)
			o.UsePathStyle = true
		})
	default:
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3Store{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBaseURL(cfg, endpoint),
	}, nil
}

func publicBaseURL(cfg Config, wasabiEndpoint string) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	if wasabiEndpoint != "" {
		return fmt.Sprintf("https://%s/%s", wasabiEndpoint, cfg.Bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

func (s *S3Store) Upload(ctx context.Context, key string, contentType string, body io.Reader, size int64) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put object %s: %w", key, err)
	}
	return s.publicBaseURL + "/" + escapeKey(key), nil
}

// Ping checks bucket access.
func (s *S3Store) Ping(ctx context.Context) error {
	_, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", s.bucket, err)
	}
	return nil
}
