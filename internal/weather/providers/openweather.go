package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"

	"github.com/i474232898/outfit-recommender/internal/weather"
)

const defaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewOpenWeatherProvider creates the provider. An empty baseURL selects the public endpoint.
func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = defaultOpenWeatherURL
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: baseURL,
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuitBreaker("openweathermap"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

type openWeatherPayload struct {
	Name     string `json:"name"`
	Dt       int64  `json:"dt"`
	Timezone int    `json:"timezone"`
	Sys      struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
		Pressure  float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Visibility int `json:"visibility"`
	Weather    []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

func (p *OpenWeatherProvider) Fetch(ctx context.Context, loc weather.Location) (weather.Reading, error) {
	if p.apiKey == "" {
		return weather.Reading{}, fmt.Errorf("%w: openweather api key is not configured", weather.ErrUnauthorized)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")
		values.Set("q", loc.Key())

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.name, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Reading{}, fmt.Errorf("%w: read openweather body: %v", weather.ErrUnavailable, err)
	}

	var payload openWeatherPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return weather.Reading{}, fmt.Errorf("%w: decode openweather payload: %v", weather.ErrUnavailable, err)
	}

	return parseOpenWeather(payload, raw, time.Now()), nil
}

func parseOpenWeather(payload openWeatherPayload, raw []byte, now time.Time) weather.Reading {
	city := payload.Name
	if city == "" {
		city = "Unknown"
	}
	country := payload.Sys.Country
	if country == "" {
		country = "Unknown"
	}

	main, description := "Unknown", "Unknown"
	if len(payload.Weather) > 0 {
		main = payload.Weather[0].Main
		description = payload.Weather[0].Description
	}

	// Sunrise and sunset are rendered in the city's own UTC offset.
	zone := time.FixedZone("", payload.Timezone)

	return weather.Reading{
		City:               city,
		Country:            country,
		Temperature:        weather.Round1(payload.Main.Temp),
		FeelsLike:          weather.Round1(payload.Main.FeelsLike),
		Humidity:           int(payload.Main.Humidity),
		Pressure:           payload.Main.Pressure,
		WeatherMain:        main,
		WeatherDescription: description,
		WindSpeed:          payload.Wind.Speed,
		WindDirection:      payload.Wind.Deg,
		Cloudiness:         payload.Clouds.All,
		Visibility:         payload.Visibility,
		Sunrise:            time.Unix(payload.Sys.Sunrise, 0).In(zone).Format(weather.ClockLayout),
		Sunset:             time.Unix(payload.Sys.Sunset, 0).In(zone).Format(weather.ClockLayout),
		FetchTime:          now.Format(weather.FetchTimeLayout),
		Provider:           "openweathermap",
		Raw:                raw,
	}
}
