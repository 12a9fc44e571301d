package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/i474232898/outfit-recommender/internal/config"
	"github.com/i474232898/outfit-recommender/internal/logging"
	"github.com/i474232898/outfit-recommender/internal/outfit"
	"github.com/i474232898/outfit-recommender/internal/store"
	"github.com/i474232898/outfit-recommender/internal/weather"
	"github.com/i474232898/outfit-recommender/internal/weather/providers"
)

// app holds the wired components shared by the commands.
type app struct {
	store   *store.Store
	service *outfit.Service
}

func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		logging.Error().Err(err).Msg("error closing store")
	}
}

// openStore opens the badger backend when a data directory is configured and the
// in-memory backend otherwise. With seed set, an empty catalog is loaded from CATALOG_CSV.
func openStore(ctx context.Context, cfg *config.AppConfig, seed bool) (*store.Store, error) {
	var backend store.Backend
	if cfg.DataDir != "" {
		b, err := store.OpenBadger(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		backend = b
		logging.Info().Str("dir", cfg.DataDir).Msg("using badger store")
	} else {
		backend = store.NewMemoryBackend(cfg.StoreMaxHistory)
		logging.Info().Int("max_history", cfg.StoreMaxHistory).Msg("using in-memory store")
	}

	st := store.New(backend)
	if !seed {
		return st, nil
	}
	if _, err := st.SeedCatalog(ctx, cfg.CatalogCSV); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	return st, nil
}

// newProvider builds the provider chain: OpenWeatherMap first, then WeatherAPI.com and
// Open-Meteo when their keys are configured.
func newProvider(cfg *config.AppConfig) weather.Provider {
	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provs := []weather.Provider{
		providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL),
	}
	if cfg.WeatherAPIKey != "" {
		provs = append(provs, providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey, ""))
	}
	// Open-Meteo does not require an API key, but geocoding requires a Google API key.
	if cfg.GeocoderAPIKey != "" {
		provs = append(provs, providers.NewOpenMeteoProvider(httpClient, providers.GoogleGeocoder(cfg.GeocoderAPIKey), ""))
	}
	return providers.NewChain(provs...)
}

func newApp(ctx context.Context, cfg *config.AppConfig) (*app, error) {
	st, err := openStore(ctx, cfg, true)
	if err != nil {
		return nil, err
	}
	return &app{
		store:   st,
		service: outfit.NewService(newProvider(cfg), st, st, cfg.MatchLimit),
	}, nil
}
