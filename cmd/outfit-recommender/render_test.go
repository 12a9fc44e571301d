package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/i474232898/outfit-recommender/internal/outfit"
	"github.com/i474232898/outfit-recommender/internal/store"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

func TestRenderResult(t *testing.T) {
	res := outfit.Result{
		Success: true,
		Weather: &weather.Reading{
			City: "Lisbon", Country: "PT", Temperature: 20, FeelsLike: 19.5,
			Humidity: 55, WeatherMain: "Clouds", WeatherDescription: "broken clouds",
			Provider: "openweathermap", FetchTime: "2026-10-18 12:00:00",
		},
		Outfits: []outfit.Group{{
			OutfitType: outfit.CompleteOutfit,
			Items:      []outfit.Item{{ClothingType: "Jeans", Category: "Bottom", ComfortRating: 8}},
		}},
		Advice: "Mild weather.",
	}

	out := renderResult(res)

	assert.Contains(t, out, "Weather in Lisbon, PT")
	assert.Contains(t, out, "20.0°C (68.0°F)")
	assert.Contains(t, out, "Clouds (broken clouds)")
	assert.Contains(t, out, "Mild weather.")
	assert.Contains(t, out, "Complete Outfit: Jeans")
	assert.Contains(t, out, "Jeans")
	assert.Contains(t, out, "comfort 8/10")
}

func TestRenderResultFailure(t *testing.T) {
	out := renderResult(outfit.Result{Error: "City 'Atlantis' not found"})
	assert.Contains(t, out, "City 'Atlantis' not found")
}

func TestRenderHistoryAndStats(t *testing.T) {
	assert.Contains(t, renderHistory(nil), "No recommendation history yet.")

	out := renderHistory([]outfit.Record{{
		City:                "Oslo",
		Weather:             weather.Reading{Temperature: -3, WeatherMain: "Snow"},
		RecommendationCount: 4,
		Timestamp:           time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}})
	assert.Contains(t, out, "2026-01-02 03:04:05")
	assert.Contains(t, out, "Oslo")
	assert.Contains(t, out, "4 groups")

	out = renderStats(store.Stats{WeatherCount: 3, OutfitCount: 12, RecommendationsCount: 2})
	assert.Contains(t, out, "outfit_dataset")
	assert.Contains(t, out, "12")
}
