package storage

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Provider is the blob store the ingested repository files live in.
type Provider interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// New selects the provider from STORAGE_PROVIDER: "minio" or "local"
// (default).
func New(ctx context.Context) (Provider, error) {
	switch os.Getenv("STORAGE_PROVIDER") {
	case "minio":
		return NewMinioProvider(ctx)
	case "", "local":
		root := os.Getenv("STORAGE_LOCAL_PATH")
		if root == "" {
			root = "./data/blobs"
		}
		return NewLocalProvider(root), nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", os.Getenv("STORAGE_PROVIDER"))
	}
}
