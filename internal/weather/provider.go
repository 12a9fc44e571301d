package weather

import (
	"context"
	"errors"
)

var (
	// ErrCityNotFound is returned when the provider does not know the requested city.
	ErrCityNotFound = errors.New("city not found")
	// ErrUnauthorized is returned when the provider rejects the configured credentials.
	ErrUnauthorized = errors.New("invalid api key")
	// ErrUnavailable covers network failures, server errors and open circuits.
	ErrUnavailable = errors.New("weather provider unavailable")
)

// Provider abstracts a current-weather source (e.g. OpenWeatherMap, WeatherAPI, Open-Meteo).
// Implementations return a fully normalized Reading or one of the sentinel errors above
// (possibly wrapped).
type Provider interface {
	Name() string
	Fetch(ctx context.Context, loc Location) (Reading, error)
}
