package store

import (
	"sort"

	"github.com/joshbuilds/portfolio-api/models"
)

// Aggregate recomputes the summary view from the full event list. It is
// pure and deterministic: the same events in the same order always produce
// the same aggregate, and the map outputs are independent of event order.
func Aggregate(events []models.Event) models.Aggregate {
	agg := models.NewAggregate()

	// elementOrder remembers first-encountered order so the popular ranking
	// has a stable tie-break.
	var elementOrder []string

	for _, event := range events {
		switch event.Type {
		case "click":
			if event.Element != "" {
				if _, seen := agg.ClicksByElement[event.Element]; !seen {
					elementOrder = append(elementOrder, event.Element)
				}
				agg.ClicksByElement[event.Element]++
			}
			if event.Section != "" {
				agg.ClicksBySection[event.Section]++
			}
		case "scroll":
			if depth, ok := metadataNumber(event.Metadata, "depth"); ok && event.Section != "" {
				if depth > agg.ScrollDepth[event.Section] {
					agg.ScrollDepth[event.Section] = depth
				}
			}
		case "view":
			if spent, ok := metadataNumber(event.Metadata, "timeSpent"); ok && event.Section != "" {
				agg.TimeOnSection[event.Section] += spent
			}
		}
		// hover and form events stay in the raw log but carry no aggregate
	}

	popular := make([]models.ElementCount, 0, len(elementOrder))
	for _, element := range elementOrder {
		popular = append(popular, models.ElementCount{Element: element, Count: agg.ClicksByElement[element]})
	}
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Count > popular[j].Count
	})
	if len(popular) > 20 {
		popular = popular[:20]
	}
	agg.PopularElements = popular

	return agg
}

// metadataNumber extracts a positive numeric metadata value. JSON numbers
// decode as float64; ints appear when events are built in-process.
func metadataNumber(metadata map[string]interface{}, key string) (float64, bool) {
	if metadata == nil {
		return 0, false
	}
	switch v := metadata[key].(type) {
	case float64:
		return v, v > 0
	case int:
		return float64(v), v > 0
	case int64:
		return float64(v), v > 0
	default:
		return 0, false
	}
}
