package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i474232898/outfit-recommender/internal/outfit"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	b, err := OpenBadger("")
	require.NoError(t, err)
	s := New(b)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSuitableItems(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	coat := outfit.Item{
		ClothingType: "Coat", Category: outfit.CategoryOuterwear,
		TempMin: -10, TempMax: 10, HumidityMax: 100,
		WeatherConditions: []string{"Snow", "rain"}, ComfortRating: 7,
	}
	items := append(SampleCatalog(), coat)
	_, err := s.InsertOutfits(ctx, items)
	require.NoError(t, err)

	got, err := s.SuitableItems(ctx, outfit.Query{Temperature: 25, Humidity: 40, Condition: weather.ConditionClear})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "T-Shirt", got[0].ClothingType)
	assert.Equal(t, "Jeans", got[1].ClothingType)
	assert.NotEmpty(t, got[0].ID)

	got, err = s.SuitableItems(ctx, outfit.Query{Temperature: 10, Humidity: 100, Condition: weather.ConditionSnow})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Coat", got[0].ClothingType)

	got, err = s.SuitableItems(ctx, outfit.Query{Temperature: 45, Humidity: 40, Condition: weather.ConditionClear})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuitableItemsSkipsMalformedDocuments(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.Insert(ctx, Outfits, Document{"clothing_type": "Broken", "temp_min": "cold"})
	require.NoError(t, err)
	_, err = s.InsertOutfits(ctx, SampleCatalog())
	require.NoError(t, err)

	got, err := s.SuitableItems(ctx, outfit.Query{Temperature: 25, Humidity: 40, Condition: weather.ConditionClouds})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, city := range []string{"Paris", "Tokyo", "paris"} {
		r := &weather.Reading{City: city, Temperature: 20, WeatherMain: "Clear"}
		require.NoError(t, s.SaveWeather(ctx, r))
		assert.NotEmpty(t, r.ID)
		assert.False(t, r.Timestamp.IsZero())

		rec := &outfit.Record{City: city, Weather: *r, RecommendationCount: 1}
		require.NoError(t, s.SaveRecommendation(ctx, rec))
		assert.NotEmpty(t, rec.ID)
	}

	recs, err := s.RecentRecommendations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "paris", recs[0].City)
	assert.Equal(t, "Tokyo", recs[1].City)

	readings, err := s.RecentWeather(ctx, "Paris", 0)
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, "paris", readings[0].City)
	assert.Equal(t, "Paris", readings[1].City)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{WeatherCount: 3, OutfitCount: 0, RecommendationsCount: 3}, st)
}

func TestDocumentCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Insert(ctx, Outfits, Document{"_id": "ignored", "clothing_type": "Scarf", "comfort_rating": 6})
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", id)

	doc, err := s.Get(ctx, Outfits, id)
	require.NoError(t, err)
	assert.Equal(t, id, doc["_id"])
	assert.Equal(t, "Scarf", doc["clothing_type"])

	changed, err := s.Update(ctx, Outfits, id, Document{"_id": "other", "comfort_rating": 8, "material": "wool"})
	require.NoError(t, err)
	assert.True(t, changed)
	doc, err = s.Get(ctx, Outfits, id)
	require.NoError(t, err)
	assert.Equal(t, id, doc["_id"])
	assert.Equal(t, "Scarf", doc["clothing_type"])
	assert.EqualValues(t, 8, doc["comfort_rating"])
	assert.Equal(t, "wool", doc["material"])

	changed, err = s.Update(ctx, Outfits, id, Document{"comfort_rating": 8.0, "material": "wool"})
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = s.Update(ctx, Outfits, id, Document{"_id": "only-id"})
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = s.Update(ctx, Outfits, "missing", Document{"a": 1})
	assert.ErrorIs(t, err, ErrNotFound)

	docs, err := s.List(ctx, Outfits, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, s.Delete(ctx, Outfits, id))
	assert.ErrorIs(t, s.Delete(ctx, Outfits, id), ErrNotFound)
}

func TestListWeatherNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, city := range []string{"A", "B", "C"} {
		require.NoError(t, s.SaveWeather(ctx, &weather.Reading{City: city}))
	}

	docs, err := s.List(ctx, Weather, 2)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "C", docs[0]["city"])
	assert.Equal(t, "B", docs[1]["city"])

	n, err := s.Clear(ctx, Weather)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	docs, err = s.List(ctx, Weather, 0)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
