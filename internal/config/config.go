package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/i474232898/outfit-recommender/internal/weather"
)

// ConfigErrorType categorizes configuration loading failures.
type ConfigErrorType string

const (
	ErrParsing    ConfigErrorType = "PARSING_FAILED"
	ErrValidation ConfigErrorType = "VALIDATION_FAILED"
)

// ConfigError is returned by Load when the environment cannot be turned into a valid AppConfig.
type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

type AppConfig struct {
	AppEnv string `envconfig:"APP_ENV" default:"local"`
	Port   string `envconfig:"PORT" default:"8080" validate:"required,numeric"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console" validate:"oneof=json console"`

	OpenWeatherAPIKey  string        `envconfig:"OPENWEATHER_API_KEY"`
	OpenWeatherBaseURL string        `envconfig:"OPENWEATHER_BASE_URL" validate:"omitempty,url"`
	WeatherAPIKey      string        `envconfig:"WEATHERAPI_API_KEY"`
	GeocoderAPIKey     string        `envconfig:"GEOCODER_API_KEY"`
	HTTPTimeout        time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`

	// DataDir is the badger directory. Empty keeps all data in memory.
	DataDir         string `envconfig:"DATA_DIR"`
	StoreMaxHistory int    `envconfig:"STORE_MAX_HISTORY" default:"1000" validate:"gte=0"`
	CatalogCSV      string `envconfig:"CATALOG_CSV" default:"outfit_dataset.csv"`

	// WatchCities is a ';' separated list of "City" or "City,CC" entries that the
	// scheduler refreshes every RefreshInterval.
	WatchCities     string        `envconfig:"WATCH_CITIES"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"30m" validate:"gte=1m"`

	MatchLimit   int `envconfig:"MATCH_LIMIT" default:"10" validate:"gt=0"`
	HistoryLimit int `envconfig:"HISTORY_LIMIT" default:"10" validate:"gt=0"`
}

// Load reads configuration from the environment, after merging a .env file if present.
func Load() (*AppConfig, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrParsing,
			Message: "failed to process environment configuration",
			Err:     err,
		}
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, &ConfigError{
			Type:    ErrValidation,
			Message: "configuration validation failed",
			Err:     err,
		}
	}
	return &cfg, nil
}

// WatchLocations parses WatchCities.
func (c *AppConfig) WatchLocations() []weather.Location {
	var locs []weather.Location
	for _, entry := range strings.Split(c.WatchCities, ";") {
		loc := weather.ParseLocation(entry)
		if loc.City == "" {
			continue
		}
		locs = append(locs, loc)
	}
	return locs
}
