package recommend

import "github.com/Rangggase/Holy-Grail/internal/domain"

// BucketFor maps an hour of day (0-23) to the model-facing time bucket.
// The partition is fixed: [5,11) Pagi, [11,18) Siang, everything else Malam.
func BucketFor(hour int) domain.TimeOfDay {
	switch {
	case hour >= 5 && hour < 11:
		return domain.TimePagi
	case hour >= 11 && hour < 18:
		return domain.TimeSiang
	default:
		return domain.TimeMalam
	}
}

// DisplayLabel returns the UI label for an hour. Hours 15-17 read "Sore"
// on screen even though the model bucket for them stays Siang. The two
// deliberately disagree; the trained encoders only know Pagi/Siang/Malam.
func DisplayLabel(hour int) string {
	if hour >= 15 && hour < 18 {
		return "Sore"
	}
	return string(BucketFor(hour))
}
