package exclusion

import (
	"exclusion-screener/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the exclusion feature. Shards are always tried from the
// local artifact dir first; when cfg.UseStorage is set and a storage client
// is available, object storage serves as fallback.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, cfg Config) *Feature {
	fetchers := MultiFetcher{DirFetcher{Dir: cfg.ArtifactDir}}
	if cfg.UseStorage && client != nil {
		fetchers = append(fetchers, StorageFetcher{Client: client, Bucket: bucket, Prefix: cfg.StoragePrefix})
	}

	cache := NewCache(fetchers, logger)
	svc := NewService(NewMatcher(cache), logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "exclusion"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
