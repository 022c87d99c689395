package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ObjectStore holds uploaded gallery binaries and hands back a public
// URL. Only the URL is ever persisted.
type ObjectStore interface {
	Upload(ctx context.Context, path, contentType string, data []byte) (string, error)
}

// SupabaseStore is an ObjectStore backed by the Supabase storage REST
// API. Objects land in a single public bucket.
type SupabaseStore struct {
	httpClient *resty.Client
	baseURL    string
	bucket     string
}

func NewSupabaseStore(baseURL, serviceKey, bucket string) *SupabaseStore {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Authorization", "Bearer "+serviceKey)

	return &SupabaseStore{
		httpClient: client,
		baseURL:    baseURL,
		bucket:     bucket,
	}
}

type storageError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error"`
}

// Upload stores the binary under path and returns its public URL.
func (s *SupabaseStore) Upload(ctx context.Context, path, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty upload")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var apiErr storageError
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		SetError(&apiErr).
		Post(fmt.Sprintf("/storage/v1/object/%s/%s", s.bucket, path))

	if err != nil {
		return "", fmt.Errorf("storage upload failed: %w", err)
	}
	if resp.IsError() {
		if apiErr.Message != "" {
			return "", errors.New(apiErr.Message)
		}
		return "", fmt.Errorf("storage API error [%d]: %s", resp.StatusCode(), resp.String())
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, path), nil
}
