package outfit

import (
	"strings"

	"github.com/i474232898/outfit-recommender/internal/weather"
)

// Summary renders a short text summary of the groups: the complete outfit when present,
// otherwise the top item of the first three groups.
func Summary(groups []Group) string {
	if len(groups) == 0 {
		return "No outfit recommendations available."
	}

	for _, g := range groups {
		if g.OutfitType != CompleteOutfit {
			continue
		}
		names := make([]string, 0, len(g.Items))
		for _, item := range g.Items {
			names = append(names, item.ClothingType)
		}
		return "Complete Outfit: " + strings.Join(names, ", ")
	}

	var parts []string
	for _, g := range groups[:min(len(groups), 3)] {
		if len(g.Items) == 0 {
			continue
		}
		parts = append(parts, g.OutfitType+": "+g.Items[0].ClothingType)
	}
	return strings.Join(parts, "\n")
}

// Advice returns dressing advice for a reading based on temperature, humidity and the raw
// provider condition.
func Advice(r weather.Reading) string {
	var advice []string

	temp := r.Temperature
	switch {
	case temp < 0:
		advice = append(advice, "Very cold! Dress in layers and cover exposed skin.")
	case temp < 10:
		advice = append(advice, "Cold weather. Wear warm clothing and consider layers.")
	case temp < 20:
		advice = append(advice, "Cool weather. Light layers recommended.")
	case temp < 30:
		advice = append(advice, "Comfortable temperature. Light clothing is fine.")
	default:
		advice = append(advice, "Hot weather! Stay cool with light, breathable fabrics.")
	}

	switch {
	case r.Humidity > 80:
		advice = append(advice, "High humidity. Choose breathable, moisture-wicking materials.")
	case r.Humidity < 30:
		advice = append(advice, "Low humidity. Consider moisturizing and stay hydrated.")
	}

	switch condition := strings.ToLower(r.WeatherMain); {
	case condition == "rain" || condition == "drizzle":
		advice = append(advice, "Rainy weather. Don't forget waterproof clothing and umbrella!")
	case condition == "snow":
		advice = append(advice, "Snowy conditions. Wear waterproof boots and warm layers.")
	case condition == "thunderstorm":
		advice = append(advice, "Thunderstorm expected. Stay indoors if possible, carry rain gear.")
	case condition == "clear" && temp > 25:
		advice = append(advice, "Sunny and warm. Consider sun protection (hat, sunglasses).")
	}

	return strings.Join(advice, " ")
}
