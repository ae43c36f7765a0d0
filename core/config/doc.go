// Package config provides configuration management for the exclusion screener.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults sourced from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials and bucket settings for shard artifacts
//   - Log: Logging level and format
//   - Exclusion: source CSV path, shard artifact location, remote-fetch toggle
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
