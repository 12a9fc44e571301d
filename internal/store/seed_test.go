package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogCSV = `clothing_type,category,temp_min,temp_max,humidity_min,humidity_max,weather_conditions,season,material,comfort_rating
Raincoat,Outerwear,5,20,60,100,"['rain', 'thunderstorm']",autumn,nylon,7
Shorts,Bottom,22.5,40,0,80,"clear,clouds",summer,cotton,8.0
`

func TestParseConditions(t *testing.T) {
	tests := map[string][]string{
		"['clear', 'clouds']": {"clear", "clouds"},
		"rain,snow":           {"rain", "snow"},
		` ["snow"] `:          {"snow"},
		"":                    {},
		"[]":                  {},
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseConditions(in), in)
	}
}

func TestReadCatalogCSV(t *testing.T) {
	items, err := ReadCatalogCSV(strings.NewReader(catalogCSV))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Raincoat", items[0].ClothingType)
	assert.Equal(t, []string{"rain", "thunderstorm"}, items[0].WeatherConditions)
	assert.Equal(t, 60, items[0].HumidityMin)

	assert.Equal(t, 22.5, items[1].TempMin)
	assert.Equal(t, []string{"clear", "clouds"}, items[1].WeatherConditions)
	assert.Equal(t, 8, items[1].ComfortRating)
}

func TestReadCatalogCSVReportsBadRows(t *testing.T) {
	data := catalogCSV +
		"Boots,Footwear,cold,10,0,100,snow,winter,leather,6\n" +
		",Top,0,10,0,100,clear,all,cotton,5\n" +
		"Gloves,Accessory,10,0,0,100,snow,winter,wool,5\n"

	items, err := ReadCatalogCSV(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
	assert.Contains(t, err.Error(), "line 5")
	assert.Contains(t, err.Error(), "line 6")
	assert.Len(t, items, 2)
}

func TestReadCatalogCSVMissingColumn(t *testing.T) {
	_, err := ReadCatalogCSV(strings.NewReader("clothing_type,category\nHat,Accessory\n"))
	assert.ErrorContains(t, err, "temp_min")
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "outfit_dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(catalogCSV), 0o600))

	s := New(NewMemoryBackend(0))
	n, err := s.SeedCatalog(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.SeedCatalog(ctx, path)
	require.NoError(t, err)
	assert.Zero(t, n, "non-empty catalog is not reseeded")

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, st.OutfitCount)
}

func TestSeedCatalogFallsBackToSample(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryBackend(0))

	n, err := s.SeedCatalog(ctx, filepath.Join(t.TempDir(), "missing.csv"))
	require.NoError(t, err)
	assert.Equal(t, len(SampleCatalog()), n)

	docs, err := s.List(ctx, Outfits, 0)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "T-Shirt", docs[0]["clothing_type"])
}
