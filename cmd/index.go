package cmd

import (
	"context"
	"fmt"
	"os"

	"exclusion-screener/core/config"
	"exclusion-screener/core/logger"
	"exclusion-screener/core/storage"
	"exclusion-screener/feature/exclusion/index"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the index command
	indexCSVPath string
	indexOutDir  string
	indexUpload  bool
)

// indexCmd builds and publishes the sharded exclusion index.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build the sharded exclusion index from the source CSV",
	Long: `Build the sharded exclusion index from the downloaded source list.

Reads the delimited source file once, partitions records into 27 letter
buckets (a-z plus a catch-all), and publishes one JSON artifact per bucket.
Publishing is atomic: a failed or interrupted build never overwrites
previously published artifacts.

Examples:
  # Build from the configured CSV into the configured artifact dir
  exclusion-screener index

  # Explicit paths
  exclusion-screener index --csv data/UPDATED.csv --out data/shards

  # Also upload the artifacts to object storage
  exclusion-screener index --upload`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&indexCSVPath, "csv", "", "Source CSV path (default from config)")
	indexCmd.Flags().StringVar(&indexOutDir, "out", "", "Artifact output directory (default from config)")
	indexCmd.Flags().BoolVar(&indexUpload, "upload", false, "Upload artifacts to object storage after the local publish")

	RootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	csvPath := cfg.Exclusion.CSVPath
	if indexCSVPath != "" {
		csvPath = indexCSVPath
	}
	outDir := cfg.Exclusion.ArtifactDir
	if indexOutDir != "" {
		outDir = indexOutDir
	}

	l.Info("Building exclusion index", zap.String("csv", csvPath))

	// An unreadable source is fatal: abort before touching published artifacts.
	src, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open source list: %w", err)
	}
	defer src.Close()

	buckets, stats, err := index.BuildIndex(src)
	if err != nil {
		return err
	}

	l.Info("Index built",
		zap.Int("individuals", stats.Individuals),
		zap.Int("businesses", stats.Businesses),
		zap.Int("skipped_rows", stats.Skipped),
		zap.Int("buckets", len(buckets)),
	)

	if err := index.WriteLocal(outDir, buckets, l); err != nil {
		return err
	}
	l.Info("Published shard artifacts", zap.String("dir", outDir))

	if indexUpload {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		if err := index.Upload(ctx, client, cfg.Storage.Bucket, cfg.Exclusion.StoragePrefix, buckets, l); err != nil {
			return err
		}
	}

	return nil
}
