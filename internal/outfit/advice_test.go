package outfit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/i474232898/outfit-recommender/internal/weather"
)

func TestSummaryCompleteOutfit(t *testing.T) {
	groups := []Group{
		{OutfitType: CompleteOutfit, Items: []Item{item("T-Shirt", CategoryTop, 9), item("Jeans", CategoryBottom, 8)}},
		{OutfitType: "Top Recommendations", Items: []Item{item("T-Shirt", CategoryTop, 9)}},
	}
	assert.Equal(t, "Complete Outfit: T-Shirt, Jeans", Summary(groups))
}

func TestSummaryWithoutCompleteOutfit(t *testing.T) {
	groups := []Group{
		{OutfitType: "Top Recommendations", Items: []Item{item("T-Shirt", CategoryTop, 9)}},
		{OutfitType: "Bottom Recommendations", Items: []Item{item("Shorts", CategoryBottom, 8)}},
		{OutfitType: "Hat Recommendations"},
		{OutfitType: "Footwear Recommendations", Items: []Item{item("Sandals", CategoryFootwear, 8)}},
	}
	assert.Equal(t, "Top Recommendations: T-Shirt\nBottom Recommendations: Shorts", Summary(groups))
}

func TestSummaryEmpty(t *testing.T) {
	assert.Equal(t, "No outfit recommendations available.", Summary(nil))
}

func TestAdvice(t *testing.T) {
	tests := []struct {
		name    string
		reading weather.Reading
		want    string
	}{
		{
			name:    "freezing snow",
			reading: weather.Reading{Temperature: -5, Humidity: 50, WeatherMain: "Snow"},
			want:    "Very cold! Dress in layers and cover exposed skin. Snowy conditions. Wear waterproof boots and warm layers.",
		},
		{
			name:    "cool humid drizzle",
			reading: weather.Reading{Temperature: 12, Humidity: 85, WeatherMain: "Drizzle"},
			want: "Cool weather. Light layers recommended. High humidity. Choose breathable, moisture-wicking materials. " +
				"Rainy weather. Don't forget waterproof clothing and umbrella!",
		},
		{
			name:    "hot dry clear",
			reading: weather.Reading{Temperature: 32, Humidity: 20, WeatherMain: "Clear"},
			want: "Hot weather! Stay cool with light, breathable fabrics. Low humidity. Consider moisturizing and stay hydrated. " +
				"Sunny and warm. Consider sun protection (hat, sunglasses).",
		},
		{
			name:    "mild clouds",
			reading: weather.Reading{Temperature: 22, Humidity: 50, WeatherMain: "Clouds"},
			want:    "Comfortable temperature. Light clothing is fine.",
		},
		{
			name:    "cold thunderstorm",
			reading: weather.Reading{Temperature: 5, Humidity: 60, WeatherMain: "Thunderstorm"},
			want:    "Cold weather. Wear warm clothing and consider layers. Thunderstorm expected. Stay indoors if possible, carry rain gear.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Advice(tt.reading))
		})
	}
}
