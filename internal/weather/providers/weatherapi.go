package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"

	"github.com/i474232898/outfit-recommender/internal/common"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

const defaultWeatherAPIURL = "https://api.weatherapi.com/v1/current.json"

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, apiKey, baseURL string) *WeatherAPIProvider {
	if baseURL == "" {
		baseURL = defaultWeatherAPIURL
	}
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: baseURL,
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuitBreaker("weatherapi"),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

type weatherAPIPayload struct {
	Location struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		FeelsLikeC float64 `json:"feelslike_c"`
		Humidity   float64 `json:"humidity"`
		WindKph    float64 `json:"wind_kph"`
		WindDegree float64 `json:"wind_degree"`
		PressureMb float64 `json:"pressure_mb"`
		Cloud      int     `json:"cloud"`
		VisKm      float64 `json:"vis_km"`
		Condition  struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

func (p *WeatherAPIProvider) Fetch(ctx context.Context, loc weather.Location) (weather.Reading, error) {
	if p.apiKey == "" {
		return weather.Reading{}, fmt.Errorf("%w: weatherapi api key is not configured", weather.ErrUnauthorized)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		// WeatherAPI uses "q" for location; it accepts "city,country".
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
		return weather.Reading{}, fmt.Errorf("%w: read weatherapi body: %v", weather.ErrUnavailable, err)
	}

	var payload weatherAPIPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return weather.Reading{}, fmt.Errorf("%w: decode weatherapi payload: %v", weather.ErrUnavailable, err)
	}

	text := payload.Current.Condition.Text

	return weather.Reading{
		City:               payload.Location.Name,
		Country:            payload.Location.Country,
		Temperature:        weather.Round1(payload.Current.TempC),
		FeelsLike:          weather.Round1(payload.Current.FeelsLikeC),
		Humidity:           int(payload.Current.Humidity),
		Pressure:           payload.Current.PressureMb,
		WeatherMain:        mapWeatherAPICondition(text),
		WeatherDescription: strings.ToLower(text),
		// Convert wind from kph to m/s (approx).
		WindSpeed:     payload.Current.WindKph / 3.6,
		WindDirection: payload.Current.WindDegree,
		Cloudiness:    payload.Current.Cloud,
		Visibility:    int(payload.Current.VisKm * 1000),
		FetchTime:     time.Now().Format(weather.FetchTimeLayout),
		Provider:      p.name,
		Raw:           raw,
	}, nil
}

// mapWeatherAPICondition translates WeatherAPI's free-text condition into the
// OpenWeatherMap "main" vocabulary understood by weather.Categorize.
func mapWeatherAPICondition(text string) string {
	t := strings.ToLower(text)
	switch {
	case t == "":
		return "Unknown"
	case common.HasAny(t, "thunder", "storm"):
		return "Thunderstorm"
	case common.HasAny(t, "snow", "sleet", "blizzard", "ice pellets"):
		return "Snow"
	case common.HasAny(t, "drizzle"):
		return "Drizzle"
	case common.HasAny(t, "rain", "shower"):
		return "Rain"
	case common.HasAny(t, "fog", "mist"):
		return "Mist"
	case common.HasAny(t, "cloud", "overcast"):
		return "Clouds"
	case common.HasAny(t, "sunny", "clear"):
		return "Clear"
	default:
		return "Unknown"
	}
}
