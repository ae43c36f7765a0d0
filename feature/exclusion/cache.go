package exclusion

import (
	"context"
	"encoding/json"
	"sync"

	"exclusion-screener/feature/exclusion/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache lazily loads letter buckets on first use and keeps them for the
// process lifetime. Concurrent loads of the same letter are coalesced into a
// single fetch via singleflight. A failed fetch or parse resolves to an empty
// bucket, cached permanently for that letter: exclusion screening degrades to
// "no known exclusions" rather than failing the caller's request, and the
// failure is logged so an empty-due-to-failure bucket is distinguishable from
// a genuinely empty one.
//
// Each Cache is self-contained; tests and multiple engines can hold
// independent instances.
type Cache struct {
	fetcher Fetcher
	logger  *zap.Logger

	mu      sync.RWMutex
	buckets map[string]*models.LetterBucket
	sf      singleflight.Group
}

// NewCache creates a cache backed by the given fetcher.
func NewCache(fetcher Fetcher, logger *zap.Logger) *Cache {
	return &Cache{
		fetcher: fetcher,
		logger:  logger,
		buckets: make(map[string]*models.LetterBucket),
	}
}

// Load returns the bucket for a letter, fetching it on first request.
// It never fails: the worst outcome is an empty bucket.
func (c *Cache) Load(ctx context.Context, letter string) *models.LetterBucket {
	// Fast path: already resolved.
	c.mu.RLock()
	bucket, ok := c.buckets[letter]
	c.mu.RUnlock()
	if ok {
		return bucket
	}

	// Slow path: coalesce concurrent loads of the same letter.
	result, _, _ := c.sf.Do(letter, func() (any, error) {
		// Double-check after winning the flight.
		c.mu.RLock()
		bucket, ok := c.buckets[letter]
		c.mu.RUnlock()
		if ok {
			return bucket, nil
		}

		// One caller's cancellation must not abort the load for the other
		// waiters, and the result populates the cache either way.
		bucket = c.fetch(context.WithoutCancel(ctx), letter)

		c.mu.Lock()
		c.buckets[letter] = bucket
		c.mu.Unlock()

		return bucket, nil
	})

	return result.(*models.LetterBucket)
}

// fetch retrieves and parses one bucket, degrading to empty on any failure.
func (c *Cache) fetch(ctx context.Context, letter string) *models.LetterBucket {
	data, err := c.fetcher.Fetch(ctx, letter)
	if err != nil {
		c.logger.Warn("Shard load failed, caching empty bucket",
			zap.String("letter", letter),
			zap.Error(err),
		)
		return models.NewLetterBucket()
	}

	var bucket models.LetterBucket
	if err := json.Unmarshal(data, &bucket); err != nil {
		c.logger.Warn("Shard parse failed, caching empty bucket",
			zap.String("letter", letter),
			zap.Error(err),
		)
		return models.NewLetterBucket()
	}
	if bucket.Individuals == nil {
		bucket.Individuals = make(map[string][]models.ExclusionRecord)
	}
	if bucket.Businesses == nil {
		bucket.Businesses = make(map[string][]models.ExclusionRecord)
	}
	return &bucket
}

// Cached returns the letters currently resolved, for observability.
func (c *Cache) Cached() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	letters := make([]string, 0, len(c.buckets))
	for letter := range c.buckets {
		letters = append(letters, letter)
	}
	return letters
}
