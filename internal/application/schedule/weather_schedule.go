package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"ecogarden-api/internal/domain/usecase/weather"
	"ecogarden-api/pkg/log"
	"ecogarden-api/pkg/metrics"
	"ecogarden-api/pkg/msg"
	"ecogarden-api/pkg/redis"
)

const (
	lockKey       = "weather_cache_warming"
	lockNamespace = "weather_schedules"
)

// WeatherSchedulerConfig holds configuration for the cache warming scheduler
type WeatherSchedulerConfig struct {
	CronExpression string
	LockTTL        time.Duration
	RunTimeout     time.Duration
}

// WeatherScheduler refreshes the weather cache of every profile city on a cron schedule.
// With a redis client only the instance holding the lock warms on each tick.
type WeatherScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	config      WeatherSchedulerConfig
}

// NewWeatherScheduler creates the scheduler, redisClient may be nil for a single instance
func NewWeatherScheduler(useCase weather.UseCase, redisClient *redis.Client, config WeatherSchedulerConfig) *WeatherScheduler {
	return &WeatherScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config:      config,
	}
}

// InitWeatherScheduleTasks registers the warming task and starts the cron
func (s *WeatherScheduler) InitWeatherScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.config.CronExpression, s.ExecuteScheduledTask); err != nil {
		return err
	}

	s.cron.Start()
	log.Info(msg.GetMessage("weather.warm.scheduled", s.config.CronExpression))
	return nil
}

// ExecuteScheduledTask runs one warming pass
func (s *WeatherScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	ctx, cancel := context.WithTimeout(context.Background(), s.getRunTimeout())
	defer cancel()

	err := s.run(ctx, requestID)
	switch {
	case errors.Is(err, redis.ErrLockNotAcquired):
		metrics.CacheWarmRuns.WithLabelValues("skipped").Inc()
		log.Info(msg.GetMessage("weather.warm.skipped"), zap.String("request_id", requestID))
	case err != nil:
		metrics.CacheWarmRuns.WithLabelValues("failure").Inc()
		log.Error(msg.GetMessage("weather.warm.failed"), zap.String("request_id", requestID), zap.Error(err))
	default:
		metrics.CacheWarmRuns.WithLabelValues("success").Inc()
	}
}

func (s *WeatherScheduler) run(ctx context.Context, requestID string) error {
	if s.redisClient == nil {
		return s.useCase.WarmCache(ctx, requestID)
	}

	opts := redis.NewLockOptions().
		WithTTL(s.getLockTTL()).
		WithLockNamespace(lockNamespace)

	return redis.LockWithFunc(ctx, s.redisClient, lockKey, opts, func() error {
		return s.useCase.WarmCache(ctx, requestID)
	})
}

// Stop gracefully stops the scheduler
func (s *WeatherScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}

func (s *WeatherScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *WeatherScheduler) getRunTimeout() time.Duration {
	if s.config.RunTimeout > 0 {
		return s.config.RunTimeout
	}
	return 5 * time.Minute
}
