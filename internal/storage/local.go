package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type LocalProvider struct {
	root string
}

func NewLocalProvider(root string) *LocalProvider {
	return &LocalProvider{root: root}
}

// resolve maps a storage key onto the blob root. Keys that would resolve
// outside the root are rejected rather than joined.
func (p *LocalProvider) resolve(key string) (string, error) {
	rel := filepath.FromSlash(key)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("storage key %q escapes the blob root", key)
	}
	return filepath.Join(p.root, rel), nil
}

func (p *LocalProvider) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	dst, err := p.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, reader)
	return err
}

func (p *LocalProvider) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	src, err := p.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(src)
}

func (p *LocalProvider) Delete(ctx context.Context, key string) error {
	dst, err := p.resolve(key)
	if err != nil {
		return err
	}
	return os.Remove(dst)
}
