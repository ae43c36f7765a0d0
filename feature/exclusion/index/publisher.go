package index

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"exclusion-screener/core/storage"
	"exclusion-screener/feature/exclusion/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ArtifactName returns the artifact file name for a bucket id.
func ArtifactName(letter string) string {
	return letter + ".json"
}

// ObjectName returns the storage object key for a bucket id under a prefix.
func ObjectName(prefix, letter string) string {
	return path.Join(prefix, ArtifactName(letter))
}

// WriteLocal serializes every bucket into dir, one {letter}.json per bucket.
// All artifacts are first written to a temp directory inside dir and only then
// renamed into place, so an interrupted build never clobbers or tears a
// previously published index.
func WriteLocal(dir string, buckets map[string]*models.LetterBucket, logg *zap.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifact dir: %w", err)
	}

	// Staging dir lives inside dir so the final renames stay on one filesystem.
	tmp, err := os.MkdirTemp(dir, ".publish-")
	if err != nil {
		return fmt.Errorf("failed to create staging dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	for letter, bucket := range buckets {
		data, err := json.Marshal(bucket)
		if err != nil {
			return fmt.Errorf("failed to serialize bucket %q: %w", letter, err)
		}
		if err := os.WriteFile(filepath.Join(tmp, ArtifactName(letter)), data, 0o644); err != nil {
			return fmt.Errorf("failed to stage bucket %q: %w", letter, err)
		}

		if ind, bus := len(bucket.Individuals), len(bucket.Businesses); ind > 0 || bus > 0 {
			logg.Info("Staged bucket",
				zap.String("letter", letter),
				zap.Int("individual_keys", ind),
				zap.Int("business_keys", bus),
				zap.Int("bytes", len(data)),
			)
		}
	}

	// Everything staged; publish.
	for letter := range buckets {
		name := ArtifactName(letter)
		if err := os.Rename(filepath.Join(tmp, name), filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("failed to publish bucket %q: %w", letter, err)
		}
	}

	return nil
}

// Upload publishes every bucket to object storage under prefix, creating the
// bucket if needed. Callers run this only after a successful local build.
func Upload(ctx context.Context, client storage.Client, bucketName, prefix string, buckets map[string]*models.LetterBucket, logg *zap.Logger) error {
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", bucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %q: %w", bucketName, err)
		}
	}

	for letter, bucket := range buckets {
		data, err := json.Marshal(bucket)
		if err != nil {
			return fmt.Errorf("failed to serialize bucket %q: %w", letter, err)
		}
		object := ObjectName(prefix, letter)
		_, err = client.PutObject(ctx, bucketName, object, bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: "application/json"})
		if err != nil {
			return fmt.Errorf("failed to upload %q: %w", object, err)
		}
		logg.Debug("Uploaded bucket", zap.String("object", object), zap.Int("bytes", len(data)))
	}

	logg.Info("Uploaded shard artifacts", zap.String("bucket", bucketName), zap.String("prefix", prefix), zap.Int("count", len(buckets)))
	return nil
}
