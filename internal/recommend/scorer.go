package recommend

import (
	"log"
	"strconv"

	"github.com/Rangggase/Holy-Grail/internal/domain"
)

// UnknownUserCode is the sentinel encoder code for customers the model has
// never seen (new customers, or returning ones outside the vocabulary).
const UnknownUserCode = 0

// Encoder is a fixed categorical-value-to-integer-code vocabulary. A value
// outside the vocabulary is an expected state, not an error; encoders never
// learn new values at request time.
type Encoder interface {
	Contains(value string) bool
	Transform(value string) (int, bool)
}

// Bundle is the pretrained scoring model together with its five categorical
// encoders. Scoring is one batched predict over five parallel code arrays,
// one row per candidate item.
type Bundle interface {
	UserEncoder() Encoder
	ItemEncoder() Encoder
	WeatherEncoder() Encoder
	TimeEncoder() Encoder
	GroupEncoder() Encoder
	BatchPredict(users, items, weathers, times, groups []int) ([]float64, error)
}

// rawScores returns one raw model score per candidate, parallel to the
// input slice. Model scoring is an optional enhancement layer: whenever the
// bundle is absent or any step fails, every candidate keeps a 0.0 raw score
// and the failure is logged here, never surfaced to the caller. Items the
// item encoder does not know likewise keep 0.0 but stay in the candidate
// set for boosting and ranking.
func rawScores(candidates []domain.MenuItem, cust domain.Customer, ctx domain.Context, bundle Bundle) []float64 {
	scores := make([]float64, len(candidates))
	if bundle == nil || len(candidates) == 0 {
		return scores
	}

	weatherCode, ok := bundle.WeatherEncoder().Transform(string(ctx.Weather))
	if !ok {
		log.Printf("[recommend] weather %q outside encoder vocabulary, skipping model scoring", ctx.Weather)
		return scores
	}
	timeCode, ok := bundle.TimeEncoder().Transform(string(ctx.TimeOfDay))
	if !ok {
		log.Printf("[recommend] time of day %q outside encoder vocabulary, skipping model scoring", ctx.TimeOfDay)
		return scores
	}
	groupCode, ok := bundle.GroupEncoder().Transform(string(ctx.GroupSize))
	if !ok {
		log.Printf("[recommend] group size %q outside encoder vocabulary, skipping model scoring", ctx.GroupSize)
		return scores
	}

	userCode := UnknownUserCode
	if cust.Returning {
		if code, ok := bundle.UserEncoder().Transform(strconv.FormatInt(cust.ID, 10)); ok {
			userCode = code
		}
	}

	// Restrict to items the model knows; remember each row's position in
	// the candidate slice so scores land back on the right item.
	var rows []int
	var itemCodes []int
	for i, item := range candidates {
		if code, ok := bundle.ItemEncoder().Transform(strconv.FormatInt(item.ID, 10)); ok {
			rows = append(rows, i)
			itemCodes = append(itemCodes, code)
		}
	}
	if len(rows) == 0 {
		return scores
	}

	users := make([]int, len(rows))
	weathers := make([]int, len(rows))
	times := make([]int, len(rows))
	groups := make([]int, len(rows))
	for i := range rows {
		users[i] = userCode
		weathers[i] = weatherCode
		times[i] = timeCode
		groups[i] = groupCode
	}

	predicted, err := bundle.BatchPredict(users, itemCodes, weathers, times, groups)
	if err != nil || len(predicted) != len(rows) {
		log.Printf("[recommend] model inference failed, falling back to rule-only scores: %v", err)
		return scores
	}
	for i, row := range rows {
		scores[row] = predicted[i]
	}
	return scores
}
