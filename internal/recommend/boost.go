package recommend

import "github.com/Rangggase/Holy-Grail/internal/domain"

// Boost weights. The family boost deliberately dominates the model's score
// range so family-appropriate items outrank almost any learned preference.
const (
	familyBoost  = 10.0
	weatherBoost = 2.0
)

// Boost applies the rule-based score adjustments on top of a raw model
// score. Boosts are additive and independent; several may apply at once.
// No boost is negative, so Boost(raw, ...) >= raw always.
func Boost(raw float64, tags []Tag, ctx domain.Context) float64 {
	boosted := raw
	if ctx.GroupSize == domain.GroupKeluarga &&
		(HasTag(tags, TagKeluarga) || HasTag(tags, TagSharing)) {
		boosted += familyBoost
	}
	if ctx.Weather == domain.WeatherHujan && HasTag(tags, TagHangat) {
		boosted += weatherBoost
	}
	if ctx.Weather == domain.WeatherCerah && HasTag(tags, TagDingin) {
		boosted += weatherBoost
	}
	return boosted
}
