package outfit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/outfit-recommender/internal/weather"
)

func TestQueryMatches(t *testing.T) {
	shirt := Item{
		ClothingType:      "T-Shirt",
		Category:          CategoryTop,
		TempMin:           20,
		TempMax:           40,
		HumidityMin:       10,
		HumidityMax:       90,
		WeatherConditions: []string{"Clear", "clouds"},
	}

	tests := []struct {
		name string
		q    Query
		want bool
	}{
		{"inside ranges", Query{Temperature: 25, Humidity: 50, Condition: weather.ConditionClear}, true},
		{"inclusive lower bounds", Query{Temperature: 20, Humidity: 10, Condition: weather.ConditionClouds}, true},
		{"inclusive upper bounds", Query{Temperature: 40, Humidity: 90, Condition: weather.ConditionClear}, true},
		{"too cold", Query{Temperature: 19.9, Humidity: 50, Condition: weather.ConditionClear}, false},
		{"too hot", Query{Temperature: 40.1, Humidity: 50, Condition: weather.ConditionClear}, false},
		{"too dry", Query{Temperature: 25, Humidity: 9, Condition: weather.ConditionClear}, false},
		{"too humid", Query{Temperature: 25, Humidity: 91, Condition: weather.ConditionClear}, false},
		{"wrong condition", Query{Temperature: 25, Humidity: 50, Condition: weather.ConditionRain}, false},
		{"no condition filter", Query{Temperature: 25, Humidity: 50}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Matches(shirt))
		})
	}
}

func TestQueryMatchesMalformedRanges(t *testing.T) {
	inverted := item("Inverted", CategoryTop, 5)
	inverted.TempMin, inverted.TempMax = 30, 10
	assert.False(t, Query{Temperature: 20, Humidity: 50}.Matches(inverted))
}

func TestMatcherSortsAndCaps(t *testing.T) {
	var items []Item
	for i := 0; i < 15; i++ {
		items = append(items, item(fmt.Sprintf("item-%02d", i), CategoryTop, i%6))
	}
	m := NewMatcher(&fakeCatalog{items: items}, 0)

	got := m.Match(context.Background(), 20, 50, "Clear")
	require.Len(t, got, DefaultMatchLimit)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].ComfortRating, got[i].ComfortRating)
	}
	// Ties keep catalog order: item-05 precedes item-11 (both rated 5).
	assert.Equal(t, []string{"item-05", "item-11", "item-04", "item-10"}, names(got[:4]))
}

func TestMatcherFiltersByCondition(t *testing.T) {
	umbrella := item("Umbrella", CategoryAccessory, 7)
	umbrella.WeatherConditions = []string{"RAIN"}
	sunglasses := item("Sunglasses", CategoryAccessory, 8)
	sunglasses.WeatherConditions = []string{"clear"}

	m := NewMatcher(&fakeCatalog{items: []Item{umbrella, sunglasses}}, 10)

	assert.Equal(t, []string{"Umbrella"}, names(m.Match(context.Background(), 12, 80, "Drizzle")))
	assert.Equal(t, []string{"Sunglasses"}, names(m.Match(context.Background(), 12, 80, "squall")))
}

func TestMatcherStoreErrorYieldsEmpty(t *testing.T) {
	m := NewMatcher(&fakeCatalog{err: errStoreDown}, 10)

	got := m.Match(context.Background(), 20, 50, "Clear")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMatcherNoItemsInRange(t *testing.T) {
	hot := item("Tank Top", CategoryTop, 9)
	hot.TempMin = 30
	m := NewMatcher(&fakeCatalog{items: []Item{hot}}, 10)

	assert.Empty(t, m.Match(context.Background(), 5, 50, "Clear"))
}

func TestRankDoesNotMutateInput(t *testing.T) {
	in := []Item{item("a", CategoryTop, 1), item("b", CategoryTop, 9)}
	out := Rank(in, 1)

	assert.Equal(t, []string{"b"}, names(out))
	assert.Equal(t, []string{"a", "b"}, names(in))
}
