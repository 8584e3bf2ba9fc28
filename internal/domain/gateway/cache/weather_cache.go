package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"ecogarden-api/internal/domain/model"
	"ecogarden-api/pkg/log"
	"ecogarden-api/pkg/metrics"
	"ecogarden-api/pkg/msg"
)

// ErrLoadFailed wraps the loader error of GetOrLoad. Failures are never cached.
var ErrLoadFailed = errors.New("weather cache load failed")

// Loader produces a fresh snapshot on a miss
type Loader func(ctx context.Context) (model.WeatherSnapshot, error)

// Options tunes WeatherCache
type Options struct {
	// SingleFlight shares one loader call between concurrent misses of the same key
	SingleFlight bool
	// Now replaces time.Now, for tests
	Now func() time.Time
}

// WeatherCache is a read-through cache over a Store
type WeatherCache struct {
	store        Store
	now          func() time.Time
	singleFlight bool
	group        singleflight.Group
}

func NewWeatherCache(store Store, opts Options) *WeatherCache {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	return &WeatherCache{
		store:        store,
		now:          now,
		singleFlight: opts.SingleFlight,
	}
}

// Get returns the entry only while it is valid. Read errors count as a miss.
func (c *WeatherCache) Get(ctx context.Context, key string) (*Entry, bool) {
	entry, err := c.store.Get(ctx, key)
	if err != nil {
		log.Warn(msg.GetMessage("weather.log.cache-read-failed", key), zap.Error(err))
		return nil, false
	}
	if !entry.Valid(c.now()) {
		return nil, false
	}
	return entry, true
}

// GetOrLoad serves a valid entry or calls loader once and stores its result for ttl
func (c *WeatherCache) GetOrLoad(ctx context.Context, key string, ttl time.Duration, loader Loader) (model.WeatherSnapshot, error) {
	if entry, ok := c.Get(ctx, key); ok {
		metrics.WeatherCacheRequests.WithLabelValues("hit").Inc()
		log.Debug(msg.GetMessage("weather.log.cache-hit", key))
		return entry.Payload, nil
	}

	metrics.WeatherCacheRequests.WithLabelValues("miss").Inc()
	log.Debug(msg.GetMessage("weather.log.cache-miss", key))

	if !c.singleFlight {
		return c.load(ctx, key, ttl, loader)
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		return c.load(ctx, key, ttl, loader)
	})
	if err != nil {
		return model.WeatherSnapshot{}, err
	}
	return result.(model.WeatherSnapshot), nil
}

// Refresh calls loader and stores its result whatever the current entry
func (c *WeatherCache) Refresh(ctx context.Context, key string, ttl time.Duration, loader Loader) (model.WeatherSnapshot, error) {
	return c.load(ctx, key, ttl, loader)
}

func (c *WeatherCache) load(ctx context.Context, key string, ttl time.Duration, loader Loader) (model.WeatherSnapshot, error) {
	snapshot, err := loader(ctx)
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	entry := Entry{
		Key:      key,
		Payload:  snapshot,
		StoredAt: c.now(),
		TTL:      ttl,
	}
	if err := c.store.Put(ctx, entry); err != nil {
		log.Warn(msg.GetMessage("weather.log.cache-write-failed", key), zap.Error(err))
	}
	return snapshot, nil
}
