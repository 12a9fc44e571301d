package outfit

import (
	"context"
	"errors"
	"time"

	"github.com/i474232898/outfit-recommender/internal/weather"
)

type fakeCatalog struct {
	items []Item
	err   error
	calls int
}

func (f *fakeCatalog) SuitableItems(_ context.Context, q Query) ([]Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []Item
	for _, item := range f.items {
		if q.Matches(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeHistory struct {
	readings []weather.Reading
	records  []Record
	err      error
}

func (f *fakeHistory) SaveWeather(_ context.Context, r *weather.Reading) error {
	if f.err != nil {
		return f.err
	}
	r.ID = "w1"
	r.Timestamp = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f.readings = append(f.readings, *r)
	return nil
}

func (f *fakeHistory) SaveRecommendation(_ context.Context, rec *Record) error {
	if f.err != nil {
		return f.err
	}
	rec.ID = "r1"
	rec.Timestamp = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f.records = append(f.records, *rec)
	return nil
}

type fakeProvider struct {
	reading weather.Reading
	err     error
	got     []weather.Location
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Fetch(_ context.Context, loc weather.Location) (weather.Reading, error) {
	f.got = append(f.got, loc)
	if f.err != nil {
		return weather.Reading{}, f.err
	}
	return f.reading, nil
}

var errStoreDown = errors.New("store down")

// item builds an all-weather catalog item with full ranges.
func item(name, category string, comfort int) Item {
	return Item{
		ClothingType:      name,
		Category:          category,
		TempMin:           -50,
		TempMax:           50,
		HumidityMin:       0,
		HumidityMax:       100,
		WeatherConditions: []string{"clear", "clouds", "rain", "snow", "thunderstorm"},
		ComfortRating:     comfort,
	}
}

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ClothingType)
	}
	return out
}
