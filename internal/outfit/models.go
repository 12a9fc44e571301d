package outfit

import (
	"context"
	"time"

	"github.com/i474232898/outfit-recommender/internal/common"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

// Categories the assembler treats specially. Any other category passes through as an
// extra per-category group.
const (
	CategoryTop       = "Top"
	CategoryBottom    = "Bottom"
	CategoryFootwear  = "Footwear"
	CategoryOuterwear = "Outerwear"
	CategoryAccessory = "Accessory"
)

// CompleteOutfit is the outfit_type of the combined outfit group.
const CompleteOutfit = "Complete Outfit"

// Item is a clothing document from the catalog collection.
type Item struct {
	ID                string   `json:"_id,omitempty"`
	ClothingType      string   `json:"clothing_type" validate:"required"`
	Category          string   `json:"category" validate:"required"`
	TempMin           float64  `json:"temp_min"`
	TempMax           float64  `json:"temp_max" validate:"gtefield=TempMin"`
	HumidityMin       int      `json:"humidity_min" validate:"min=0,max=100"`
	HumidityMax       int      `json:"humidity_max" validate:"min=0,max=100,gtefield=HumidityMin"`
	WeatherConditions []string `json:"weather_conditions"`
	Season            string   `json:"season,omitempty"`
	Material          string   `json:"material,omitempty"`
	ComfortRating     int      `json:"comfort_rating" validate:"min=0,max=10"`
}

// Group is a named list of recommended items.
type Group struct {
	OutfitType string `json:"outfit_type"`
	Items      []Item `json:"items"`
}

// Record is the recommendation document appended to the history collection.
type Record struct {
	ID                  string          `json:"_id,omitempty"`
	City                string          `json:"city"`
	Weather             weather.Reading `json:"weather"`
	RecommendedOutfits  []Group         `json:"recommended_outfits"`
	RecommendationCount int             `json:"recommendation_count"`
	Timestamp           time.Time       `json:"timestamp"` // assigned on write
}

// Query selects catalog items suitable for a weather point. Bounds are inclusive.
// An empty Condition disables the condition filter.
type Query struct {
	Temperature float64
	Humidity    int
	Condition   weather.Condition
}

// Matches reports whether item is suitable for q.
func (q Query) Matches(item Item) bool {
	if q.Temperature < item.TempMin || q.Temperature > item.TempMax {
		return false
	}
	if q.Humidity < item.HumidityMin || q.Humidity > item.HumidityMax {
		return false
	}
	if q.Condition != "" && !common.ContainsFold(item.WeatherConditions, string(q.Condition)) {
		return false
	}
	return true
}

// CatalogStore returns catalog items matching a query in catalog insertion order.
type CatalogStore interface {
	SuitableItems(ctx context.Context, q Query) ([]Item, error)
}

// HistoryStore persists weather readings and recommendation records. Implementations
// assign ID and Timestamp on the passed value.
type HistoryStore interface {
	SaveWeather(ctx context.Context, r *weather.Reading) error
	SaveRecommendation(ctx context.Context, rec *Record) error
}
