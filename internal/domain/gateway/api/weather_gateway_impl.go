package api

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	"github.com/sony/gobreaker"

	"ecogarden-api/internal/domain/model"
	"ecogarden-api/internal/domain/model/external"
	"ecogarden-api/pkg/http"
	"ecogarden-api/pkg/metrics"
)

const currentWeatherPath = "/data/2.5/weather"

// WeatherGatewayConfig holds the provider settings
type WeatherGatewayConfig struct {
	APIKey  string
	BaseURL string
	// Timeout bounds a single provider call
	Timeout time.Duration
	// Units and Lang are sent as query parameters, metric and fr by default
	Units string
	Lang  string
	// ClientOptions is passed to the HTTP client, mainly to inject a transport in tests
	ClientOptions http.ClientOptions
	// Breaker overrides the circuit breaker settings
	Breaker *gobreaker.Settings
}

// weatherGatewayImpl implements the WeatherGateway interface over OpenWeatherMap
type weatherGatewayImpl struct {
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
	apiKey     string
	timeout    time.Duration
	units      string
	lang       string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(config WeatherGatewayConfig) WeatherGateway {
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	if config.Units == "" {
		config.Units = "metric"
	}
	if config.Lang == "" {
		config.Lang = "fr"
	}

	clientOptions := config.ClientOptions
	if clientOptions.ReadTimeout == 0 {
		clientOptions.ReadTimeout = config.Timeout
	}
	if clientOptions.ConnectionTimeout == 0 {
		clientOptions.ConnectionTimeout = config.Timeout
	}
	if clientOptions.Logger == nil {
		clientOptions.Logger = http.ZapLogger{Name: "openweather"}
	}

	settings := gobreaker.Settings{
		Name:         "openweather",
		MaxRequests:  5,
		Interval:     1 * time.Minute,
		Timeout:      2 * time.Minute,
		IsSuccessful: isProviderHealthy,
	}
	if config.Breaker != nil {
		settings = *config.Breaker
	}

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(config.BaseURL, clientOptions),
		circuit:    gobreaker.NewCircuitBreaker(settings),
		apiKey:     config.APIKey,
		timeout:    config.Timeout,
		units:      config.Units,
		lang:       config.Lang,
	}
}

// Fetch calls the current weather endpoint
func (w *weatherGatewayImpl) Fetch(ctx context.Context, city string) (model.WeatherSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	result, err := w.circuit.Execute(func() (any, error) {
		successResp, _, status, err := w.httpClient.Request().
			WithContext(ctx).
			WithMethod(http.GET).
			WithPath(currentWeatherPath).
			WithQueryParams(map[string]string{
				"q":     city,
				"appid": w.apiKey,
				"units": w.units,
				"lang":  w.lang,
			}).
			WithSuccessResp(&external.OpenWeatherResponse{}).
			WithErrorResp(&external.OpenWeatherError{}).
			Execute()
		if err != nil {
			return nil, err
		}
		if status != nethttp.StatusOK {
			return nil, &http.StatusError{StatusCode: status}
		}
		return successResp, nil
	})
	metrics.WeatherProviderDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.WeatherProviderCalls.WithLabelValues("circuit_open").Inc()
		} else {
			metrics.WeatherProviderCalls.WithLabelValues("failure").Inc()
		}
		return model.WeatherSnapshot{}, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	snapshot, err := toSnapshot(result.(*external.OpenWeatherResponse))
	if err != nil {
		metrics.WeatherProviderCalls.WithLabelValues("malformed").Inc()
		return model.WeatherSnapshot{}, err
	}

	metrics.WeatherProviderCalls.WithLabelValues("success").Inc()
	return snapshot, nil
}

// toSnapshot requires main.temp, main.humidity, weather[0].description and wind.speed
func toSnapshot(response *external.OpenWeatherResponse) (model.WeatherSnapshot, error) {
	if response == nil {
		return model.WeatherSnapshot{}, malformed("empty body")
	}
	if response.Main == nil || response.Main.Temp == nil {
		return model.WeatherSnapshot{}, malformed("main.temp")
	}
	if response.Main.Humidity == nil {
		return model.WeatherSnapshot{}, malformed("main.humidity")
	}
	if len(response.Weather) == 0 || response.Weather[0].Description == nil {
		return model.WeatherSnapshot{}, malformed("weather[0].description")
	}
	if response.Wind == nil || response.Wind.Speed == nil {
		return model.WeatherSnapshot{}, malformed("wind.speed")
	}

	return model.WeatherSnapshot{
		TemperatureC: *response.Main.Temp,
		Description:  *response.Weather[0].Description,
		WindSpeedMps: *response.Wind.Speed,
		HumidityPct:  *response.Main.Humidity,
	}, nil
}

// isProviderHealthy keeps client errors out of the breaker counts, unknown cities answer 404
func isProviderHealthy(err error) bool {
	var statusErr *http.StatusError
	return err == nil || (errors.As(err, &statusErr) && statusErr.StatusCode < 500)
}

func malformed(field string) error {
	return fmt.Errorf("%w: %w: missing %s", ErrProviderFailure, ErrMalformedResponse, field)
}
