package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/i474232898/outfit-recommender/internal/logging"
	"github.com/i474232898/outfit-recommender/internal/outfit"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

// DefaultListLimit bounds generic collection listings.
const DefaultListLimit = 50

// Document is a schema-less document as exposed through the collection API.
type Document map[string]any

// Stats reports per-collection document counts.
type Stats struct {
	WeatherCount         int `json:"weather_count"`
	OutfitCount          int `json:"outfit_count"`
	RecommendationsCount int `json:"recommendations_count"`
}

// Store is the document store shared by the catalog, weather history and recommendation
// history. It implements outfit.CatalogStore and outfit.HistoryStore.
type Store struct {
	backend Backend
	now     func() time.Time
	log     zerolog.Logger
}

// New creates a Store on top of a Backend.
func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		now:     func() time.Time { return time.Now().UTC() },
		log:     logging.With("store"),
	}
}

var (
	_ outfit.CatalogStore = (*Store)(nil)
	_ outfit.HistoryStore = (*Store)(nil)
)

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}

// put marshals v, which must carry its id in the "_id" field, and stores it.
func (s *Store) put(ctx context.Context, c Collection, id string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", c, err)
	}
	return s.backend.Put(ctx, c, id, data)
}

// SaveWeather stores a reading, assigning its ID and Timestamp.
func (s *Store) SaveWeather(ctx context.Context, r *weather.Reading) error {
	id, err := newID()
	if err != nil {
		return err
	}
	r.ID = id
	r.Timestamp = s.now()
	if err := s.put(ctx, Weather, id, r); err != nil {
		return err
	}
	s.log.Debug().Str("id", id).Str("city", r.City).Msg("weather data inserted")
	return nil
}

// SaveRecommendation stores a record, assigning its ID and Timestamp.
func (s *Store) SaveRecommendation(ctx context.Context, rec *outfit.Record) error {
	id, err := newID()
	if err != nil {
		return err
	}
	rec.ID = id
	rec.Timestamp = s.now()
	if err := s.put(ctx, Recommendations, id, rec); err != nil {
		return err
	}
	s.log.Debug().Str("id", id).Str("city", rec.City).Msg("recommendation inserted")
	return nil
}

// InsertOutfits appends catalog items in order and returns their ids.
func (s *Store) InsertOutfits(ctx context.Context, items []outfit.Item) ([]string, error) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		id, err := newID()
		if err != nil {
			return ids, err
		}
		item.ID = id
		if err := s.put(ctx, Outfits, id, item); err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	s.log.Info().Int("count", len(ids)).Msg("outfit records inserted")
	return ids, nil
}

// SuitableItems returns the catalog items matching q in insertion order. Documents that do
// not decode as items are skipped.
func (s *Store) SuitableItems(ctx context.Context, q outfit.Query) ([]outfit.Item, error) {
	var items []outfit.Item
	err := s.backend.Scan(ctx, Outfits, false, func(id string, doc []byte) bool {
		var item outfit.Item
		if err := json.Unmarshal(doc, &item); err != nil {
			s.log.Warn().Err(err).Str("id", id).Msg("skipping malformed outfit document")
			return true
		}
		if q.Matches(item) {
			items = append(items, item)
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("scan outfits: %w", err)
	}
	return items, nil
}

// RecentRecommendations returns up to limit records, newest first.
func (s *Store) RecentRecommendations(ctx context.Context, limit int) ([]outfit.Record, error) {
	records := []outfit.Record{}
	err := s.backend.Scan(ctx, Recommendations, true, func(id string, doc []byte) bool {
		var rec outfit.Record
		if err := json.Unmarshal(doc, &rec); err != nil {
			s.log.Warn().Err(err).Str("id", id).Msg("skipping malformed recommendation document")
			return true
		}
		records = append(records, rec)
		return limit <= 0 || len(records) < limit
	})
	if err != nil {
		return nil, fmt.Errorf("scan recommendations: %w", err)
	}
	return records, nil
}

// RecentWeather returns up to limit readings, newest first, optionally for one city.
func (s *Store) RecentWeather(ctx context.Context, city string, limit int) ([]weather.Reading, error) {
	readings := []weather.Reading{}
	err := s.backend.Scan(ctx, Weather, true, func(id string, doc []byte) bool {
		var r weather.Reading
		if err := json.Unmarshal(doc, &r); err != nil {
			s.log.Warn().Err(err).Str("id", id).Msg("skipping malformed weather document")
			return true
		}
		if city != "" && !strings.EqualFold(r.City, city) {
			return true
		}
		readings = append(readings, r)
		return limit <= 0 || len(readings) < limit
	})
	if err != nil {
		return nil, fmt.Errorf("scan weather: %w", err)
	}
	return readings, nil
}

// Stats counts the documents of every collection.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var (
		st  Stats
		err error
	)
	if st.WeatherCount, err = s.backend.Count(ctx, Weather); err != nil {
		return Stats{}, err
	}
	if st.OutfitCount, err = s.backend.Count(ctx, Outfits); err != nil {
		return Stats{}, err
	}
	if st.RecommendationsCount, err = s.backend.Count(ctx, Recommendations); err != nil {
		return Stats{}, err
	}
	return st, nil
}

// List returns up to limit raw documents. Weather readings are listed newest first, the
// other collections in insertion order.
func (s *Store) List(ctx context.Context, c Collection, limit int) ([]Document, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	docs := []Document{}
	var decodeErr error
	err := s.backend.Scan(ctx, c, c == Weather, func(id string, data []byte) bool {
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			decodeErr = fmt.Errorf("decode %s/%s: %w", c, id, err)
			return false
		}
		doc["_id"] = id
		docs = append(docs, doc)
		return len(docs) < limit
	})
	if err != nil {
		return nil, err
	}
	if decodeErr != nil {
		return nil, decodeErr
	}
	return docs, nil
}

// Get returns one raw document.
func (s *Store) Get(ctx context.Context, c Collection, id string) (Document, error) {
	data, err := s.backend.Get(ctx, c, id)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", c, id, err)
	}
	doc["_id"] = id
	return doc, nil
}

// Insert stores a raw document under a new id. Any "_id" field in doc is replaced.
func (s *Store) Insert(ctx context.Context, c Collection, doc Document) (string, error) {
	id, err := newID()
	if err != nil {
		return "", err
	}
	stored := make(Document, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	stored["_id"] = id
	if err := s.put(ctx, c, id, stored); err != nil {
		return "", err
	}
	return id, nil
}

// Update merges fields into an existing document. The "_id" field cannot be changed.
// Update merges fields into the stored document. It reports false when every field
// already holds the given value, in which case nothing is written.
func (s *Store) Update(ctx context.Context, c Collection, id string, fields Document) (bool, error) {
	doc, err := s.Get(ctx, c, id)
	if err != nil {
		return false, err
	}
	changed := false
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		if cur, ok := doc[k]; ok && sameValue(cur, v) {
			continue
		}
		doc[k] = v
		changed = true
	}
	if !changed {
		return false, nil
	}
	return true, s.put(ctx, c, id, doc)
}

// sameValue compares by JSON encoding so that 8 and 8.0 are equal.
func sameValue(a, b any) bool {
	x, err := json.Marshal(a)
	if err != nil {
		return false
	}
	y, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return string(x) == string(y)
}

func (s *Store) Delete(ctx context.Context, c Collection, id string) error {
	return s.backend.Delete(ctx, c, id)
}

// Clear removes every document of a collection and returns how many were removed.
func (s *Store) Clear(ctx context.Context, c Collection) (int, error) {
	n, err := s.backend.Clear(ctx, c)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("count", n).Str("collection", string(c)).Msg("collection cleared")
	return n, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

func (s *Store) Close() error {
	return s.backend.Close()
}
