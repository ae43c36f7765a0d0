package exclusion

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"exclusion-screener/core/storage"
	"exclusion-screener/feature/exclusion/index"

	"github.com/minio/minio-go/v7"
)

// Fetcher retrieves the serialized bytes of one shard artifact. The cache is
// agnostic to where the bytes come from: local disk, object storage, or a
// fallback chain of both.
type Fetcher interface {
	Fetch(ctx context.Context, letter string) ([]byte, error)
}

// DirFetcher reads shard artifacts from a local directory.
type DirFetcher struct {
	Dir string
}

func (f DirFetcher) Fetch(_ context.Context, letter string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.Dir, index.ArtifactName(letter)))
	if err != nil {
		return nil, fmt.Errorf("failed to read shard %q: %w", letter, err)
	}
	return data, nil
}

// StorageFetcher reads shard artifacts from object storage.
type StorageFetcher struct {
	Client storage.Client
	Bucket string
	Prefix string
}

func (f StorageFetcher) Fetch(ctx context.Context, letter string) ([]byte, error) {
	object := index.ObjectName(f.Prefix, letter)
	obj, err := f.Client.GetObject(ctx, f.Bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shard object %q: %w", object, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read shard object %q: %w", object, err)
	}
	return data, nil
}

// MultiFetcher tries each fetcher in order and returns the first success.
// It replaces what used to be three near-identical loaders (local-only,
// remote-only, local-with-remote-fallback) with one ordered strategy list.
type MultiFetcher []Fetcher

func (m MultiFetcher) Fetch(ctx context.Context, letter string) ([]byte, error) {
	var errs []error
	for _, f := range m {
		data, err := f.Fetch(ctx, letter)
		if err == nil {
			return data, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("no fetcher configured for shard %q", letter)
	}
	return nil, errors.Join(errs...)
}
