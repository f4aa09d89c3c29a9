package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SupabaseStore talks to the Supabase Storage REST API.
type SupabaseStore struct {
	baseURL    string
	key        string
	bucket     string
	httpClient *http.Client
}

func NewSupabaseStore(supabaseURL, key, bucket string) (*SupabaseStore, error) {
	if supabaseURL == "" || key == "" {
		return nil, errors.New("storage: missing Supabase credentials")
	}
	return &SupabaseStore{
		baseURL:    strings.TrimRight(supabaseURL, "/"),
		key:        key,
		bucket:     bucket,
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}, nil
}

func (s *SupabaseStore) Upload(ctx context.Context, key string, contentType string, body io.Reader, size int64) (string, error) {
	objectPath := s.bucket + "/" + escapeKey(key)
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s", s.baseURL, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
	if err != nil {
		return "", fmt.Errorf("storage: build request: %w", err)
	}
	req.ContentLength = size
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true") // Overwrite if exists

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("storage: upload failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s", s.baseURL, objectPath), nil
}

func escapeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
