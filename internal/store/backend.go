package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no document exists for an id.
	ErrNotFound = errors.New("document not found")
	// ErrUnknownCollection is returned for collection names outside the known set.
	ErrUnknownCollection = errors.New("unknown collection")
)

// Collection names a document collection.
type Collection string

const (
	Weather         Collection = "weather_data"
	Outfits         Collection = "outfit_dataset"
	Recommendations Collection = "recommendations"
)

// Collections lists every known collection.
var Collections = []Collection{Weather, Outfits, Recommendations}

// ParseCollection maps the short names used by the HTTP API ("weather", "outfit",
// "recommendations") and the full collection names to a Collection.
func ParseCollection(name string) (Collection, error) {
	switch name {
	case "weather", string(Weather):
		return Weather, nil
	case "outfit", string(Outfits):
		return Outfits, nil
	case "recommendations":
		return Recommendations, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
}

// Backend is an ordered document backend. Documents within a collection are scanned in
// id order; ids are time-ordered so id order is insertion order.
type Backend interface {
	Put(ctx context.Context, c Collection, id string, doc []byte) error
	Get(ctx context.Context, c Collection, id string) ([]byte, error)
	Delete(ctx context.Context, c Collection, id string) error
	// Scan calls fn for each document until fn returns false. reverse scans newest first.
	Scan(ctx context.Context, c Collection, reverse bool, fn func(id string, doc []byte) bool) error
	Count(ctx context.Context, c Collection) (int, error)
	Clear(ctx context.Context, c Collection) (int, error)
	Ping(ctx context.Context) error
	Close() error
}
