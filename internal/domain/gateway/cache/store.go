package cache

import (
	"context"
	"strings"
	"time"

	"ecogarden-api/internal/domain/model"
)

const keyPrefix = "weather_"

// Entry is one cached provider reading
type Entry struct {
	Key      string                `json:"key"`
	Payload  model.WeatherSnapshot `json:"payload"`
	StoredAt time.Time             `json:"storedAt"`
	TTL      time.Duration         `json:"ttl"`
}

// Valid reports whether the entry can still be served at now
func (e *Entry) Valid(now time.Time) bool {
	return e != nil && now.Before(e.StoredAt.Add(e.TTL))
}

// Store is the keyed storage behind the weather cache. Get returns a nil entry when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Put(ctx context.Context, entry Entry) error
}

// Key normalizes a city name into its cache key
func Key(city string) string {
	return keyPrefix + strings.ToLower(city)
}
