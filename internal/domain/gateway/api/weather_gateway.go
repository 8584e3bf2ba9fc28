package api

import (
	"context"
	"errors"

	"ecogarden-api/internal/domain/model"
)

var (
	// ErrProviderFailure covers transport errors, non 200 answers and an open circuit
	ErrProviderFailure = errors.New("weather provider failure")
	// ErrMalformedResponse is returned when a required field is missing from a 200 answer
	ErrMalformedResponse = errors.New("malformed weather provider response")
)

// WeatherGateway defines the interface for the current weather provider
type WeatherGateway interface {
	// Fetch returns the current conditions for city, forwarded verbatim to the provider.
	// Every failure wraps ErrProviderFailure.
	Fetch(ctx context.Context, city string) (model.WeatherSnapshot, error)
}
