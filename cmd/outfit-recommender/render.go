package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/outfit-recommender/internal/outfit"
	"github.com/i474232898/outfit-recommender/internal/store"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

var (
	primaryColor = lipgloss.Color("#5DA9E9")
	successColor = lipgloss.Color("#4ECDC4")
	errorColor   = lipgloss.Color("#FF6B6B")
	subtleColor  = lipgloss.Color("#666666")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(subtleColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(0, 1)
)

// renderResult formats a recommendation result for the terminal.
func renderResult(res outfit.Result) string {
	if !res.Success {
		return errorStyle.Render("✗ "+res.Error) + "\n"
	}

	var b strings.Builder
	b.WriteString(renderWeather(*res.Weather))
	b.WriteString("\n")
	if res.Advice != "" {
		b.WriteString(boxStyle.Render(res.Advice))
		b.WriteString("\n\n")
	}

	b.WriteString(headerStyle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(outfit.Summary(res.Outfits))
	b.WriteString("\n")

	for _, g := range res.Outfits {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(g.OutfitType))
		b.WriteString("\n")
		for _, item := range g.Items {
			fmt.Fprintf(&b, "  • %s %s\n", item.ClothingType,
				subtleStyle.Render(fmt.Sprintf("(%s, comfort %d/10)", item.Category, item.ComfortRating)))
		}
	}
	return b.String()
}

func renderWeather(r weather.Reading) string {
	loc := r.City
	if r.Country != "" {
		loc += ", " + r.Country
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Weather in " + loc))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Temperature: %.1f°C (%.1f°F), feels like %.1f°C\n",
		r.Temperature, weather.CelsiusToFahrenheit(r.Temperature), r.FeelsLike)
	fmt.Fprintf(&b, "Conditions:  %s (%s)\n", r.WeatherMain, r.WeatherDescription)
	fmt.Fprintf(&b, "Humidity:    %d%%   Wind: %.1f m/s\n", r.Humidity, r.WindSpeed)
	if r.Provider != "" {
		b.WriteString(subtleStyle.Render("via " + r.Provider + " at " + r.FetchTime))
		b.WriteString("\n")
	}
	return b.String()
}

func renderStats(st store.Stats) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Collections"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%-18s %d\n", store.Weather, st.WeatherCount)
	fmt.Fprintf(&b, "%-18s %d\n", store.Outfits, st.OutfitCount)
	fmt.Fprintf(&b, "%-18s %d\n", store.Recommendations, st.RecommendationsCount)
	return b.String()
}

func renderHistory(records []outfit.Record) string {
	if len(records) == 0 {
		return subtleStyle.Render("No recommendation history yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent recommendations"))
	b.WriteString("\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "%s  %-20s %5.1f°C %-14s %d groups\n",
			subtleStyle.Render(rec.Timestamp.Format(weather.FetchTimeLayout)),
			rec.City, rec.Weather.Temperature, rec.Weather.WeatherMain, rec.RecommendationCount)
	}
	return b.String()
}
