package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecogarden-api/configs"
	_ "ecogarden-api/docs"
	"ecogarden-api/internal/application/controller"
	"ecogarden-api/internal/application/middleware"
	"ecogarden-api/internal/application/schedule"
	"ecogarden-api/internal/domain/gateway/api"
	"ecogarden-api/internal/domain/gateway/cache"
	"ecogarden-api/internal/domain/gateway/db"
	"ecogarden-api/internal/domain/usecase/advice"
	"ecogarden-api/internal/domain/usecase/auth"
	"ecogarden-api/internal/domain/usecase/health"
	"ecogarden-api/internal/domain/usecase/user"
	"ecogarden-api/internal/domain/usecase/weather"
	"ecogarden-api/internal/infra/database"
	"ecogarden-api/internal/infra/security"
	"ecogarden-api/pkg/log"
	"ecogarden-api/pkg/metrics"
	"ecogarden-api/pkg/msg"
	"ecogarden-api/pkg/redis"
	"ecogarden-api/pkg/resource"
)

// @title EcoGarden API
// @version 1.0
// @description Monthly gardening advices, user accounts and cached weather lookups.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	env, err := configs.LoadEnv()
	if err != nil {
		log.Fatalf("Fail to load environment: %v", err)
	}
	if err := resource.Init(env.PropertiesPath); err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	if env.MessagesPath != "" {
		if err := msg.Init(env.MessagesPath); err != nil {
			log.Fatalf("Fail to read messages: %v", err)
		}
	}
	log.Configure(env.ApplicationName, resource.GetStringOrDefault("app.log.level", "info"))
	defer log.Sync()

	log.Info(msg.GetMessage("app.start"))

	// Init infra
	gormDB := openDatabase()
	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Fail to get database pool: %v", err)
	}
	defer sqlDB.Close()

	redisClient := openRedis()
	if redisClient != nil {
		defer redisClient.Close()
	}

	jwtService, err := security.NewJWTService(security.JWTConfig{
		Secret: resource.GetString("app.security.jwt.secret"),
		Issuer: resource.GetString("app.security.jwt.issuer"),
		TTL:    resource.GetDuration("app.security.jwt.ttl"),
	})
	if err != nil {
		log.Fatalf("Fail to init token service: %v", err)
	}

	// Init Gateway
	healthDBGateway := db.NewSQLHealthDBGateway(sqlDB, resource.GetStringOrDefault("app.db.driver", database.DriverPostgres))
	adviceGateway := db.NewGormAdviceGateway(gormDB)
	userGateway := db.NewGormUserGateway(gormDB)
	weatherGateway := api.NewWeatherGateway(api.WeatherGatewayConfig{
		APIKey:  resource.GetString("app.weather.api-key"),
		BaseURL: resource.GetString("app.weather.base-url"),
		Timeout: resource.GetDuration("app.weather.provider.timeout"),
	})

	var store cache.Store
	var cacheHealthGateway cache.HealthGateway
	if redisClient != nil {
		store = cache.NewRedisStore(redisClient)
		cacheHealthGateway = cache.NewRedisHealthGateway(redisClient)
	} else {
		memoryStore := cache.NewMemoryStore()
		store = memoryStore
		cacheHealthGateway = cache.NewMemoryHealthGateway(memoryStore)
	}
	weatherCache := cache.NewWeatherCache(store, cache.Options{
		SingleFlight: resource.GetBool("app.weather.cache.single-flight"),
	})

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(healthDBGateway, cacheHealthGateway)
	weatherUseCase := weather.NewWeatherUseCase(weather.Config{
		CacheTTL: resource.GetDurationOrDefault("app.weather.cache.ttl", weather.DefaultCacheTTL),
	}, weatherGateway, weatherCache, userGateway)
	adviceUseCase := advice.NewAdviceUseCase(adviceGateway, nil)
	userUseCase := user.NewUserUseCase(userGateway)
	authUseCase := auth.NewAuthUseCase(userGateway, jwtService)

	// Init Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)
	e.Use(middleware.Authenticate(jwtService))

	group := e.Group(resource.GetString("app.server.context-path"))
	group.GET("/metrics", metrics.Handler())
	group.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Controller
	controller.NewHomeController(group).InitHomeRoutes()
	controller.NewHealthController(group, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(group, weatherUseCase).InitWeatherRoutes()
	controller.NewAdviceController(group, adviceUseCase).InitAdviceRoutes()
	controller.NewUserController(group, userUseCase).InitUserRoutes()
	controller.NewAuthController(group, authUseCase).InitAuthRoutes()

	// Init Schedule
	if resource.GetBool("app.weather.warm.enabled") {
		weatherScheduler := schedule.NewWeatherScheduler(weatherUseCase, redisClient, schedule.WeatherSchedulerConfig{
			CronExpression: resource.GetString("app.weather.warm.cron"),
		})
		if err := weatherScheduler.InitWeatherScheduleTasks(); err != nil {
			log.Fatalf("Fail to schedule weather cache warming: %v", err)
		}
		defer weatherScheduler.Stop()
	}

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Fail to start server: %v", err)
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Fail to stop server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stop"))
}

func openDatabase() *gorm.DB {
	gormDB, err := database.Open(database.Config{
		Driver:   resource.GetString("app.db.driver"),
		Host:     resource.GetString("app.db.host"),
		Port:     resource.GetString("app.db.port"),
		Username: resource.GetString("app.db.username"),
		Password: resource.GetString("app.db.password"),
		Database: resource.GetString("app.db.database"),
		Schema:   resource.GetString("app.db.schema"),
		SSLMode:  resource.GetString("app.db.ssl-mode"),
		Path:     resource.GetString("app.db.sqlite-path"),
	})
	if err != nil {
		log.Fatalf("Fail to open database: %v", err)
	}

	if resource.GetBool("app.db.auto-migrate") {
		if err := database.AutoMigrate(gormDB); err != nil {
			log.Fatalf("Fail to migrate database: %v", err)
		}
	}
	return gormDB
}

// openRedis connects only when the weather cache uses the redis store
func openRedis() *redis.Client {
	if resource.GetString("app.weather.cache.driver") != "redis" {
		return nil
	}

	config := redis.NewRedisConfig().
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))
	config.Host = resource.GetStringOrDefault("app.redis.host", config.Host)
	if port := resource.GetInt("app.redis.port"); port > 0 {
		config.Port = port
	}

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatalf("Fail to connect to redis: %v", err)
	}
	return client
}
