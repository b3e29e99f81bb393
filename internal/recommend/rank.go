package recommend

import (
	"fmt"
	"math"
	"sort"

	"github.com/Rangggase/Holy-Grail/internal/domain"
)

// Display bucket size and affinity bands. Fixed constants of the design,
// not configuration.
const (
	bucketSize = 4

	superMatchThreshold = 5.0
	newItemThreshold    = 0.1
)

const (
	AffinitySuperMatch = "Super Match"
	AffinityNewItem    = "New Item"
)

// AffinityLabel maps a boosted score to its display band: above 5.0 the
// maximal band, at or below 0.1 the new/unscored band, and a percentage of
// the 5.0 ceiling in between.
func AffinityLabel(score float64) string {
	switch {
	case score > superMatchThreshold:
		return AffinitySuperMatch
	case score > newItemThreshold:
		return fmt.Sprintf("%d%% Match", int(math.Round(score/superMatchThreshold*100)))
	default:
		return AffinityNewItem
	}
}

// Rank sorts candidates by boosted score descending and partitions them
// into the food and drink display buckets, each truncated to the top 4.
// The sort is stable: ties keep their input (catalog) order.
func Rank(candidates []domain.ScoredCandidate) domain.RankedMenu {
	sorted := make([]domain.ScoredCandidate, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FinalScore > sorted[j].FinalScore
	})

	menu := domain.RankedMenu{
		Food:   []domain.ScoredCandidate{},
		Drinks: []domain.ScoredCandidate{},
	}
	for _, c := range sorted {
		c.Affinity = AffinityLabel(c.FinalScore)
		if c.Item.IsBeverage() {
			if len(menu.Drinks) < bucketSize {
				menu.Drinks = append(menu.Drinks, c)
			}
		} else {
			if len(menu.Food) < bucketSize {
				menu.Food = append(menu.Food, c)
			}
		}
	}
	return menu
}
