package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/kelvins/geocoder"
	"github.com/sony/gobreaker"

	"github.com/i474232898/outfit-recommender/internal/weather"
)

const defaultOpenMeteoURL = "https://api.open-meteo.com/v1/forecast"

// GeocodeFunc resolves a location to latitude and longitude.
type GeocodeFunc func(ctx context.Context, loc weather.Location) (lat, lon float64, err error)

// GoogleGeocoder returns a GeocodeFunc backed by the Google Geocoding API.
func GoogleGeocoder(apiKey string) GeocodeFunc {
	geocoder.ApiKey = apiKey
	return func(_ context.Context, loc weather.Location) (float64, float64, error) {
		location, err := geocoder.Geocoding(geocoder.Address{
			City:    loc.City,
			Country: loc.Country,
		})
		if err != nil {
			return 0, 0, err
		}
		return location.Latitude, location.Longitude, nil
	}
}

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
// Open-Meteo is keyless but addresses locations by coordinates, so city names are
// geocoded first.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	geocode GeocodeFunc
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client, geocode GeocodeFunc, baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = defaultOpenMeteoURL
	}
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		geocode: geocode,
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuitBreaker("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

type openMeteoPayload struct {
	Current struct {
		Time          string  `json:"time"`
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		ApparentTemp  float64 `json:"apparent_temperature"`
		WeatherCode   int     `json:"weather_code"`
		CloudCover    int     `json:"cloud_cover"`
		PressureMSL   float64 `json:"pressure_msl"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WindDirection float64 `json:"wind_direction_10m"`
	} `json:"current"`
	Daily struct {
		Sunrise []string `json:"sunrise"`
		Sunset  []string `json:"sunset"`
	} `json:"daily"`
}

func (p *OpenMeteoProvider) Fetch(ctx context.Context, loc weather.Location) (weather.Reading, error) {
	if p.geocode == nil {
		return weather.Reading{}, fmt.Errorf("%w: openmeteo requires a geocoder", weather.ErrUnavailable)
	}

	lat, lon, err := p.geocode(ctx, loc)
	if err != nil {
		return weather.Reading{}, fmt.Errorf("%w: geocode %s: %v", weather.ErrCityNotFound, loc.Key(), err)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
		values.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
		values.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,"+
			"cloud_cover,pressure_msl,wind_speed_10m,wind_direction_10m")
		values.Set("daily", "sunrise,sunset")
		values.Set("timezone", "auto")
		values.Set("forecast_days", "1")
		values.Set("wind_speed_unit", "ms")

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
		return weather.Reading{}, fmt.Errorf("%w: read openmeteo body: %v", weather.ErrUnavailable, err)
	}

	var payload openMeteoPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return weather.Reading{}, fmt.Errorf("%w: decode openmeteo payload: %v", weather.ErrUnavailable, err)
	}

	main, description := mapOpenMeteoCondition(payload.Current.WeatherCode)

	return weather.Reading{
		City:               loc.City,
		Country:            loc.Country,
		Temperature:        weather.Round1(payload.Current.Temperature),
		FeelsLike:          weather.Round1(payload.Current.ApparentTemp),
		Humidity:           int(payload.Current.Humidity),
		Pressure:           payload.Current.PressureMSL,
		WeatherMain:        main,
		WeatherDescription: description,
		WindSpeed:          payload.Current.WindSpeed,
		WindDirection:      payload.Current.WindDirection,
		Cloudiness:         payload.Current.CloudCover,
		Sunrise:            localClock(payload.Daily.Sunrise),
		Sunset:             localClock(payload.Daily.Sunset),
		FetchTime:          time.Now().Format(weather.FetchTimeLayout),
		Provider:           p.name,
		Raw:                raw,
	}, nil
}

// localClock extracts HH:MM:SS from the first ISO8601 local timestamp in values.
func localClock(values []string) string {
	if len(values) == 0 {
		return ""
	}
	ts, err := time.Parse("2006-01-02T15:04", values[0])
	if err != nil {
		return ""
	}
	return ts.Format(weather.ClockLayout)
}

// mapOpenMeteoCondition maps WMO weather codes to the OpenWeatherMap "main" vocabulary.
func mapOpenMeteoCondition(code int) (main, description string) {
	switch {
	case code == 0:
		return "Clear", "clear sky"
	case code >= 1 && code <= 3:
		return "Clouds", "partly cloudy"
	case code == 45 || code == 48:
		return "Fog", "fog"
	case code >= 51 && code <= 57:
		return "Drizzle", "drizzle"
	case (code >= 61 && code <= 67) || (code >= 80 && code <= 82):
		return "Rain", "rain"
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return "Snow", "snow"
	case code >= 95:
		return "Thunderstorm", "thunderstorm"
	default:
		return "Unknown", "unknown"
	}
}
