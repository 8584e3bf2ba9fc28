package weather

import (
	"context"

	"ecogarden-api/internal/domain/model"
)

type UseCase interface {
	// GetWeather resolves the city (explicit name first, else the principal's profile city)
	// and returns the cached or freshly fetched conditions with their caching headers
	GetWeather(ctx context.Context, city string, principal *model.Principal) (*model.WeatherResponse, error)

	// WarmCache refreshes the cache for every city found in user profiles
	WarmCache(ctx context.Context, requestID string) error
}
