package outfit

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/i474232898/outfit-recommender/internal/logging"
	"github.com/i474232898/outfit-recommender/internal/metrics"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

// DefaultMatchLimit caps the number of items returned by the matcher.
const DefaultMatchLimit = 10

// Matcher selects catalog items whose ranges contain a weather point.
type Matcher struct {
	catalog CatalogStore
	limit   int
	log     zerolog.Logger
}

// NewMatcher creates a Matcher. A non-positive limit selects DefaultMatchLimit.
func NewMatcher(catalog CatalogStore, limit int) *Matcher {
	if limit <= 0 {
		limit = DefaultMatchLimit
	}
	return &Matcher{
		catalog: catalog,
		limit:   limit,
		log:     logging.With("matcher"),
	}
}

// Match returns up to the configured limit of suitable items, best comfort rating first.
// Store failures are logged and yield an empty result.
func (m *Matcher) Match(ctx context.Context, temperature float64, humidity int, weatherMain string) []Item {
	q := Query{
		Temperature: temperature,
		Humidity:    humidity,
		Condition:   weather.Categorize(weatherMain),
	}

	items, err := m.catalog.SuitableItems(ctx, q)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("suitable_items").Inc()
		m.log.Error().Err(err).Msg("error getting suitable outfits")
		return []Item{}
	}

	return Rank(items, m.limit)
}

// Rank orders items by comfort rating descending and truncates to limit. Items with equal
// ratings keep their input order.
func Rank(items []Item, limit int) []Item {
	ranked := make([]Item, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ComfortRating > ranked[j].ComfortRating
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
