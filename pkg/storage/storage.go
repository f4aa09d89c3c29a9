// Package storage uploads skill videos to object storage and returns their
// public URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type Provider string

const (
	ProviderSupabase Provider = "supabase"
	ProviderS3       Provider = "s3"
	ProviderWasabi   Provider = "wasabi"
)

// Uploader is implemented by every backend.
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader, size int64) (string, error)
}

type Config struct {
	Provider Provider
	Bucket   string

	// Supabase Storage REST
	SupabaseURL string
	SupabaseKey string

	// S3-compatible
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	PublicBaseURL   string // optional CDN/base used to build public URLs
}

// New builds the uploader selected by cfg.Provider.
func New(ctx context.Context, cfg Config) (Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage: bucket not configured")
	}
	cfg.Provider = Provider(strings.ToLower(string(cfg.Provider)))
	switch cfg.Provider {
	case ProviderSupabase, "":
		return NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.Bucket)
	case ProviderS3, ProviderWasabi:
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("storage: unknown provider %q", cfg.Provider)
	}
}
