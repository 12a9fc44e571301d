package outfit

import (
	"fmt"

	"github.com/i474232898/outfit-recommender/internal/logging"
	"github.com/i474232898/outfit-recommender/internal/weather"
)

const (
	outerwearBelowC     = 15.0
	maxAccessories      = 2
	maxPerCategoryItems = 3
)

var essentialCategories = []string{CategoryTop, CategoryBottom, CategoryFootwear}

// grouping keeps items per category along with the order categories were first seen.
type grouping struct {
	order []string
	items map[string][]Item
}

func groupByCategory(matched []Item) grouping {
	g := grouping{items: make(map[string][]Item)}
	for _, item := range matched {
		if _, ok := g.items[item.Category]; !ok {
			g.order = append(g.order, item.Category)
		}
		g.items[item.Category] = append(g.items[item.Category], item)
	}
	return g
}

// best returns the item with the highest comfort rating; the first one wins ties.
func best(items []Item) Item {
	top := items[0]
	for _, item := range items[1:] {
		if item.ComfortRating > top.ComfortRating {
			top = item
		}
	}
	return top
}

// Assemble builds the outfit groups for a matched item list: an optional complete outfit
// followed by one group per category in first-seen order. An empty input yields an
// empty result.
func Assemble(matched []Item, temperature float64, category weather.Condition) (groups []Group) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error().Str("panic", fmt.Sprint(r)).Msg("error recommending outfits")
			groups = []Group{}
		}
	}()

	groups = []Group{}
	if len(matched) == 0 {
		return groups
	}

	g := groupByCategory(matched)

	if complete, ok := completeOutfit(g, temperature, category); ok {
		groups = append(groups, complete)
	}

	for _, cat := range g.order {
		items := g.items[cat]
		if len(items) == 0 {
			continue
		}
		n := min(len(items), maxPerCategoryItems)
		groups = append(groups, Group{
			OutfitType: cat + " Recommendations",
			Items:      append([]Item(nil), items[:n]...),
		})
	}

	return groups
}

func completeOutfit(g grouping, temperature float64, category weather.Condition) (Group, bool) {
	for _, cat := range essentialCategories {
		if len(g.items[cat]) == 0 {
			return Group{}, false
		}
	}

	outfit := Group{OutfitType: CompleteOutfit}
	for _, cat := range essentialCategories {
		outfit.Items = append(outfit.Items, best(g.items[cat]))
	}

	needsOuterwear := temperature < outerwearBelowC ||
		category == weather.ConditionRain || category == weather.ConditionSnow
	if outerwear := g.items[CategoryOuterwear]; needsOuterwear && len(outerwear) > 0 {
		outfit.Items = append(outfit.Items, best(outerwear))
	}

	accessories := g.items[CategoryAccessory]
	outfit.Items = append(outfit.Items, accessories[:min(len(accessories), maxAccessories)]...)

	return outfit, true
}
