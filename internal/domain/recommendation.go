package domain

// ScoredCandidate is one menu item flowing through the recommendation
// pipeline. Created fresh per request, never persisted. RawScore stays 0.0
// exactly when the item was excluded from model scoring (unknown to the
// item encoder, or the model bundle is absent).
type ScoredCandidate struct {
	Item       MenuItem `json:"item"`
	RawScore   float64  `json:"raw_score"`
	FinalScore float64  `json:"final_score"`
	Affinity   string   `json:"affinity"`
}

// RankedMenu is the pipeline output: top candidates split into the two
// display buckets.
type RankedMenu struct {
	Food   []ScoredCandidate `json:"food"`
	Drinks []ScoredCandidate `json:"drinks"`
}
