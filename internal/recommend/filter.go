package recommend

import "github.com/Rangggase/Holy-Grail/internal/domain"

// Filter applies the hard context exclusions to the catalog. Excluded items
// never reach the scorer, so no boost can resurrect them:
//   - rain removes everything tagged Dingin
//   - a solo customer removes everything tagged Sharing
//
// The two rules are independent and both apply when both conditions hold.
// Filtering is idempotent.
func Filter(catalog []domain.MenuItem, ctx domain.Context) []domain.MenuItem {
	kept := make([]domain.MenuItem, 0, len(catalog))
	for _, item := range catalog {
		tags := TagsFor(item.Name)
		if ctx.Weather == domain.WeatherHujan && HasTag(tags, TagDingin) {
			continue
		}
		if ctx.GroupSize == domain.GroupSendiri && HasTag(tags, TagSharing) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
