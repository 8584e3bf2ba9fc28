package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ecogarden-api/internal/domain/apperror"
	"ecogarden-api/internal/domain/gateway/api"
	"ecogarden-api/internal/domain/gateway/cache"
	"ecogarden-api/internal/domain/gateway/db"
	"ecogarden-api/internal/domain/model"
	"ecogarden-api/pkg/log"
	"ecogarden-api/pkg/msg"
)

// DefaultCacheTTL is how long a provider answer is served
const DefaultCacheTTL = 1800 * time.Second

// Config holds the weather lookup settings
type Config struct {
	CacheTTL time.Duration
}

type weatherUseCase struct {
	config     Config
	resolver   *CityResolver
	cache      *cache.WeatherCache
	apiGateway api.WeatherGateway
	dbGateway  db.UserGateway
}

func NewWeatherUseCase(config Config, apiGateway api.WeatherGateway, weatherCache *cache.WeatherCache, dbGateway db.UserGateway) UseCase {
	if config.CacheTTL <= 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	return &weatherUseCase{
		config:     config,
		resolver:   NewCityResolver(dbGateway),
		cache:      weatherCache,
		apiGateway: apiGateway,
		dbGateway:  dbGateway,
	}
}

func (uc *weatherUseCase) GetWeather(ctx context.Context, city string, principal *model.Principal) (*model.WeatherResponse, error) {
	resolved, err := uc.resolver.Resolve(ctx, city, principal)
	if err != nil {
		return nil, err
	}

	snapshot, err := uc.cache.GetOrLoad(ctx, cache.Key(resolved), uc.config.CacheTTL, uc.loader(resolved))
	if err != nil {
		log.Warn(msg.GetMessage("weather.log.provider-failed", resolved), zap.Error(err))
		return nil, apperror.Upstream(msg.GetMessage("weather.error.unavailable"), err)
	}

	response := Format(resolved, snapshot, uc.config.CacheTTL)
	return &response, nil
}

func (uc *weatherUseCase) WarmCache(ctx context.Context, requestID string) error {
	log.Info(msg.GetMessage("weather.warm.start"), zap.String("request_id", requestID))

	cities, err := uc.dbGateway.FindDistinctCities(ctx)
	if err != nil {
		return fmt.Errorf("failed to list user cities: %w", err)
	}

	var errs []error
	for _, city := range cities {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if _, err := uc.cache.Refresh(ctx, cache.Key(city), uc.config.CacheTTL, uc.loader(city)); err != nil {
			log.Warn(msg.GetMessage("weather.log.provider-failed", city),
				zap.String("request_id", requestID),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", city, err))
		}
	}

	log.Info(msg.GetMessage("weather.warm.end"),
		zap.String("request_id", requestID),
		zap.Int("cities", len(cities)),
		zap.Int("failed", len(errs)))
	return errors.Join(errs...)
}

func (uc *weatherUseCase) loader(city string) cache.Loader {
	return func(ctx context.Context) (model.WeatherSnapshot, error) {
		return uc.apiGateway.Fetch(ctx, city)
	}
}
