package store

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/i474232898/outfit-recommender/internal/outfit"
)

var validate = validator.New()

var catalogColumns = []string{
	"clothing_type", "category", "temp_min", "temp_max", "humidity_min", "humidity_max",
	"weather_conditions", "season", "material", "comfort_rating",
}

// SampleCatalog is inserted when no catalog file is available.
func SampleCatalog() []outfit.Item {
	return []outfit.Item{
		{
			ClothingType:      "T-Shirt",
			Category:          outfit.CategoryTop,
			TempMin:           20,
			TempMax:           40,
			HumidityMin:       0,
			HumidityMax:       100,
			WeatherConditions: []string{"clear", "clouds"},
			Season:            "summer",
			Material:          "cotton",
			ComfortRating:     9,
		},
		{
			ClothingType:      "Jeans",
			Category:          outfit.CategoryBottom,
			TempMin:           10,
			TempMax:           30,
			HumidityMin:       0,
			HumidityMax:       100,
			WeatherConditions: []string{"clear", "clouds"},
			Season:            "all",
			Material:          "denim",
			ComfortRating:     8,
		},
	}
}

// ParseConditions accepts both "['clear', 'clouds']" and "clear,clouds".
func ParseConditions(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	s = strings.NewReplacer("'", "", `"`, "").Replace(s)

	conds := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			conds = append(conds, part)
		}
	}
	return conds
}

// ReadCatalogCSV decodes catalog rows from r. The header row names the columns and may
// list them in any order. Rows that fail to parse or validate are reported in the
// returned error after the valid rows have been collected.
func ReadCatalogCSV(r io.Reader) ([]outfit.Item, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range catalogColumns[:6] {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("catalog header missing column %q", col)
		}
	}

	var (
		items []outfit.Item
		errs  []error
		line  = 1
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		item, err := parseCatalogRow(rec, index)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		items = append(items, item)
	}
	return items, errors.Join(errs...)
}

func parseCatalogRow(rec []string, index map[string]int) (outfit.Item, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var (
		item outfit.Item
		err  error
	)
	item.ClothingType = field("clothing_type")
	item.Category = field("category")
	item.Season = field("season")
	item.Material = field("material")
	item.WeatherConditions = ParseConditions(field("weather_conditions"))

	if item.TempMin, err = strconv.ParseFloat(field("temp_min"), 64); err != nil {
		return item, fmt.Errorf("temp_min: %w", err)
	}
	if item.TempMax, err = strconv.ParseFloat(field("temp_max"), 64); err != nil {
		return item, fmt.Errorf("temp_max: %w", err)
	}
	if item.HumidityMin, err = parseInt(field("humidity_min")); err != nil {
		return item, fmt.Errorf("humidity_min: %w", err)
	}
	if item.HumidityMax, err = parseInt(field("humidity_max")); err != nil {
		return item, fmt.Errorf("humidity_max: %w", err)
	}
	if v := field("comfort_rating"); v != "" {
		if item.ComfortRating, err = parseInt(v); err != nil {
			return item, fmt.Errorf("comfort_rating: %w", err)
		}
	}

	if err := validate.Struct(item); err != nil {
		return item, err
	}
	return item, nil
}

// parseInt also accepts integral floats such as "80.0".
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// SeedCatalog fills an empty catalog from the CSV at path, or from SampleCatalog when
// path is empty or does not exist. A non-empty catalog is left untouched and 0 is returned.
func (s *Store) SeedCatalog(ctx context.Context, path string) (int, error) {
	n, err := s.backend.Count(ctx, Outfits)
	if err != nil {
		return 0, fmt.Errorf("count outfits: %w", err)
	}
	if n > 0 {
		s.log.Debug().Int("count", n).Msg("catalog already loaded")
		return 0, nil
	}

	items, err := s.loadCatalog(path)
	if err != nil {
		return 0, err
	}
	ids, err := s.InsertOutfits(ctx, items)
	return len(ids), err
}

func (s *Store) loadCatalog(path string) ([]outfit.Item, error) {
	if path == "" {
		s.log.Warn().Msg("no catalog file configured, creating sample data")
		return SampleCatalog(), nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Warn().Str("path", path).Msg("catalog file not found, creating sample data")
		return SampleCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	items, err := ReadCatalogCSV(f)
	if err != nil {
		if len(items) == 0 {
			return nil, err
		}
		s.log.Warn().Err(err).Int("loaded", len(items)).Msg("skipped invalid catalog rows")
	}
	s.log.Info().Str("path", path).Int("count", len(items)).Msg("loading outfit dataset")
	return items, nil
}
