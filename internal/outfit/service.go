package outfit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/i474232898/outfit-recommender/internal/logging"
	"github.com/i474232898/outfit-recommender/internal/metrics"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

// Result is the outcome of a recommendation request. Failures are reported through
// Success and Error, never as a Go error.
type Result struct {
	Success        bool             `json:"success"`
	Error          string           `json:"error,omitempty"`
	Weather        *weather.Reading `json:"weather"`
	Outfits        []Group          `json:"outfits"`
	Recommendation *Record          `json:"recommendation_data,omitempty"`
	Advice         string           `json:"advice,omitempty"`
}

func failed(msg string) Result {
	return Result{Success: false, Error: msg, Outfits: []Group{}}
}

// Service fetches weather for a city, matches it against the catalog and records the
// recommendation.
type Service struct {
	provider weather.Provider
	matcher  *Matcher
	history  HistoryStore
	log      zerolog.Logger
}

// NewService creates a new Service.
func NewService(provider weather.Provider, catalog CatalogStore, history HistoryStore, matchLimit int) *Service {
	return &Service{
		provider: provider,
		matcher:  NewMatcher(catalog, matchLimit),
		history:  history,
		log:      logging.With("outfit"),
	}
}

// Recommend matches the catalog against a weather point and assembles outfit groups.
func (s *Service) Recommend(ctx context.Context, temperature float64, humidity int, weatherMain string) []Group {
	matched := s.matcher.Match(ctx, temperature, humidity, weatherMain)
	metrics.MatchedItems.Observe(float64(len(matched)))

	category := weather.Categorize(weatherMain)
	if len(matched) == 0 {
		s.log.Warn().Float64("temperature", temperature).Int("humidity", humidity).
			Str("category", string(category)).Msg("no outfits found")
	}
	return Assemble(matched, temperature, category)
}

// GetWeatherAndRecommend runs the full workflow for a city. Persisting the reading and
// the record is best effort: store failures are logged and do not fail the request.
func (s *Service) GetWeatherAndRecommend(ctx context.Context, city string) Result {
	city = strings.TrimSpace(city)
	if city == "" {
		return failed("Please enter a city name.")
	}

	s.log.Info().Str("city", city).Msg("fetching weather data")

	reading, err := s.provider.Fetch(ctx, weather.ParseLocation(city))
	if err != nil {
		s.log.Error().Err(err).Str("city", city).Msg("could not fetch weather data")
		metrics.Recommendations.WithLabelValues("provider_error").Inc()
		return failed(providerMessage(city, err))
	}

	if err := s.history.SaveWeather(ctx, &reading); err != nil {
		metrics.StoreErrors.WithLabelValues("save_weather").Inc()
		s.log.Error().Err(err).Str("city", city).Msg("error inserting weather data")
	}

	outfits := s.Recommend(ctx, reading.Temperature, reading.Humidity, reading.WeatherMain)

	rec := &Record{
		City:                city,
		Weather:             reading,
		RecommendedOutfits:  outfits,
		RecommendationCount: len(outfits),
	}
	if err := s.history.SaveRecommendation(ctx, rec); err != nil {
		metrics.StoreErrors.WithLabelValues("save_recommendation").Inc()
		s.log.Error().Err(err).Str("city", city).Msg("error inserting recommendation")
	}

	outcome := "success"
	if len(outfits) == 0 {
		outcome = "no_match"
	}
	metrics.Recommendations.WithLabelValues(outcome).Inc()

	return Result{
		Success:        true,
		Weather:        &reading,
		Outfits:        outfits,
		Recommendation: rec,
	}
}

func providerMessage(city string, err error) string {
	switch {
	case errors.Is(err, weather.ErrUnauthorized):
		return "Could not fetch weather data: invalid weather API key"
	case errors.Is(err, weather.ErrCityNotFound):
		return fmt.Sprintf("City '%s' not found", city)
	default:
		return fmt.Sprintf("Could not fetch weather data for %s", city)
	}
}
