package weather

import (
	"math"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Condition represents a normalized high-level weather category used for outfit matching.
type Condition string

const (
	ConditionClear        Condition = "clear"
	ConditionClouds       Condition = "clouds"
	ConditionRain         Condition = "rain"
	ConditionThunderstorm Condition = "thunderstorm"
	ConditionSnow         Condition = "snow"
)

// Categorize maps a provider's raw condition name (OpenWeatherMap "main" vocabulary) to a
// Condition. Unrecognized values fall back to ConditionClear.
func Categorize(weatherMain string) Condition {
	switch strings.ToLower(strings.TrimSpace(weatherMain)) {
	case "rain", "drizzle":
		return ConditionRain
	case "thunderstorm":
		return ConditionThunderstorm
	case "snow":
		return ConditionSnow
	case "clear":
		return ConditionClear
	case "clouds", "mist", "fog", "haze":
		return ConditionClouds
	default:
		return ConditionClear
	}
}

// Location represents a logical place for which we fetch weather.
// Country is optional.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country,omitempty"`
}

// ParseLocation splits "City" or "City,CC" input into a Location.
func ParseLocation(s string) Location {
	city, country, _ := strings.Cut(s, ",")
	return Location{
		City:    strings.TrimSpace(city),
		Country: strings.TrimSpace(country),
	}
}

// Key returns a canonical string key for this location.
func (l Location) Key() string {
	if l.Country == "" {
		return l.City
	}
	return l.City + "," + l.Country
}

// Reading is the normalized current-weather document stored in the weather collection.
// Field names match the stored document schema shared with the history collections.
type Reading struct {
	ID                 string          `json:"_id,omitempty"`
	City               string          `json:"city"`
	Country            string          `json:"country"`
	Temperature        float64         `json:"temperature"`
	FeelsLike          float64         `json:"feels_like"`
	Humidity           int             `json:"humidity"`
	Pressure           float64         `json:"pressure"`
	WeatherMain        string          `json:"weather_main"`
	WeatherDescription string          `json:"weather_description"`
	WindSpeed          float64         `json:"wind_speed"`
	WindDirection      float64         `json:"wind_direction"`
	Cloudiness         int             `json:"cloudiness"`
	Visibility         int             `json:"visibility"`
	Sunrise            string          `json:"sunrise"`
	Sunset             string          `json:"sunset"`
	FetchTime          string          `json:"fetch_time"`
	Provider           string          `json:"provider,omitempty"`
	Raw                json.RawMessage `json:"raw_data,omitempty"`
	Timestamp          time.Time       `json:"timestamp"` // assigned on write, always UTC
}

// Category returns the normalized condition of the reading.
func (r Reading) Category() Condition {
	return Categorize(r.WeatherMain)
}

// Clock and date layouts used for the human-readable reading fields.
const (
	ClockLayout     = "15:04:05"
	FetchTimeLayout = "2006-01-02 15:04:05"
)

// Round1 rounds v to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}
