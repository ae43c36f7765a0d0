package exclusion

// Config holds configuration for the exclusion index and matcher.
type Config struct {
	// CSVPath is the local path of the downloaded source list.
	CSVPath string `mapstructure:"csv_path" default:"data/UPDATED.csv"`
	// SourceURL is where the download command fetches the source list from.
	SourceURL string `mapstructure:"source_url" default:"https://oig.hhs.gov/exclusions/downloadables/UPDATED.csv"`
	// ArtifactDir is the local directory holding published shard artifacts.
	ArtifactDir string `mapstructure:"artifact_dir" default:"data/shards"`
	// StoragePrefix is the object-key prefix for shard artifacts in the bucket.
	StoragePrefix string `mapstructure:"storage_prefix" default:"oig"`
	// UseStorage enables fetching shards from object storage when the local
	// artifact is unavailable (local is always tried first).
	UseStorage bool `mapstructure:"use_storage" default:"false"`
}
