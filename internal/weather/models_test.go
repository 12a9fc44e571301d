package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	cases := map[string]Condition{
		"Rain":         ConditionRain,
		"drizzle":      ConditionRain,
		"Thunderstorm": ConditionThunderstorm,
		"SNOW":         ConditionSnow,
		"Clear":        ConditionClear,
		"Clouds":       ConditionClouds,
		"Mist":         ConditionClouds,
		"fog":          ConditionClouds,
		"Haze":         ConditionClouds,
		"squall":       ConditionClear,
		"Tornado":      ConditionClear,
		"":             ConditionClear,
	}
	for in, want := range cases {
		assert.Equal(t, want, Categorize(in), "input %q", in)
	}
}

func TestParseLocation(t *testing.T) {
	assert.Equal(t, Location{City: "London", Country: "GB"}, ParseLocation(" London , GB"))
	assert.Equal(t, Location{City: "Mumbai"}, ParseLocation("Mumbai"))
	assert.Equal(t, "London,GB", ParseLocation("London,GB").Key())
	assert.Equal(t, "Mumbai", ParseLocation("Mumbai").Key())
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 21.3, Round1(21.34))
	assert.Equal(t, 21.4, Round1(21.36))
	assert.Equal(t, -3.2, Round1(-3.24))
}

func TestTemperatureConversion(t *testing.T) {
	assert.Equal(t, 212.0, CelsiusToFahrenheit(100))
	assert.Equal(t, 32.0, CelsiusToFahrenheit(0))
	assert.InDelta(t, 0.0, FahrenheitToCelsius(32), 1e-9)
	assert.InDelta(t, 37.0, FahrenheitToCelsius(98.6), 1e-9)
}
