// Package recommend implements the contextual recommendation pipeline:
// hard context filtering, batched model scoring with graceful degradation,
// rule-based score boosting and ranked partitioning into display buckets.
// The pipeline holds no state between requests; the catalog, context,
// customer and model bundle are all explicit inputs.
package recommend

import "github.com/Rangggase/Holy-Grail/internal/domain"

// Recommend runs the full pipeline over the catalog. A nil bundle is valid
// and yields rule-only ranking. An empty catalog, or one emptied by the
// filter, yields an empty ranked menu.
func Recommend(catalog []domain.MenuItem, cust domain.Customer, ctx domain.Context, bundle Bundle) domain.RankedMenu {
	candidates := Filter(catalog, ctx)
	raws := rawScores(candidates, cust, ctx, bundle)

	scored := make([]domain.ScoredCandidate, len(candidates))
	for i, item := range candidates {
		tags := TagsFor(item.Name)
		scored[i] = domain.ScoredCandidate{
			Item:       item,
			RawScore:   raws[i],
			FinalScore: Boost(raws[i], tags, ctx),
		}
	}
	return Rank(scored)
}
