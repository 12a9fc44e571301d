package outfit

import (
	"errors"
	"sort"

	"github.com/i474232898/outfit-recommender/internal/common"
)

// ErrNotEnoughData is returned when the history has no category/weather pairs to count.
var ErrNotEnoughData = errors.New("not enough data to generate heatmap")

// Heatmap counts recommended items per category (rows) and weather condition (columns).
type Heatmap struct {
	Categories   []string `json:"categories"`
	Weathers     []string `json:"weathers"`
	Data         [][]int  `json:"data"`
	TotalRecords int      `json:"total_records"`
}

// BuildHeatmap aggregates every item of every group of the given records. Category and
// weather labels are capitalized; empty values count as "Unknown".
func BuildHeatmap(records []Record) (Heatmap, error) {
	type cell struct{ category, weather string }

	counts := make(map[cell]int)
	categories := make(map[string]struct{})
	weathers := make(map[string]struct{})

	for _, rec := range records {
		w := label(rec.Weather.WeatherMain)
		weathers[w] = struct{}{}

		for _, g := range rec.RecommendedOutfits {
			for _, item := range g.Items {
				c := label(item.Category)
				categories[c] = struct{}{}
				counts[cell{c, w}]++
			}
		}
	}

	if len(categories) == 0 || len(weathers) == 0 {
		return Heatmap{}, ErrNotEnoughData
	}

	hm := Heatmap{
		Categories:   sortedKeys(categories),
		Weathers:     sortedKeys(weathers),
		TotalRecords: len(records),
	}
	for _, c := range hm.Categories {
		row := make([]int, len(hm.Weathers))
		for i, w := range hm.Weathers {
			row[i] = counts[cell{c, w}]
		}
		hm.Data = append(hm.Data, row)
	}
	return hm, nil
}

func label(s string) string {
	if s == "" {
		return "Unknown"
	}
	return common.Capitalize(s)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
