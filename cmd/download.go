package cmd

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"exclusion-screener/core/config"
	"exclusion-screener/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var downloadOutPath string

// downloadCmd fetches the published exclusion list CSV.
var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download the source exclusion list CSV",
	Long: `Download the published exclusion list (UPDATED.csv) to the configured
local path, ready for the index command.`,
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVar(&downloadOutPath, "out", "", "Output path for the CSV (default from config)")
	RootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	outPath := cfg.Exclusion.CSVPath
	if downloadOutPath != "" {
		outPath = downloadOutPath
	}

	l.Info("Downloading exclusion list", zap.String("url", cfg.Exclusion.SourceURL))

	client := &http.Client{Timeout: 5 * time.Minute}
	req, err := http.NewRequest(http.MethodGet, cfg.Exclusion.SourceURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "exclusion-screener/1.0 (healthcare exclusion checker)")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download exclusion list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download exclusion list: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read exclusion list: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := os.WriteFile(outPath, body, 0o644); err != nil {
		return fmt.Errorf("failed to write exclusion list: %w", err)
	}

	l.Info("Downloaded exclusion list",
		zap.String("path", outPath),
		zap.Int("rows", bytes.Count(body, []byte{'\n'})+1),
		zap.Int("bytes", len(body)),
	)
	return nil
}
