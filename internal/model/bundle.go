// Package model loads the pretrained scoring bundle: an embedding
// factorization model plus the categorical encoders it was trained with.
// The bundle is loaded once at startup and is read-only afterwards; an
// absent or broken bundle is a supported state the pipeline degrades
// around, so nothing here is fatal to the process.
package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Rangggase/Holy-Grail/internal/recommend"
)

// Bundle implements recommend.Bundle over the loaded weights and encoders.
type Bundle struct {
	users     *Encoder
	items     *Encoder
	weather   *Encoder
	timeOfDay *Encoder
	group     *Encoder

	userEmb  [][]float64
	itemEmb  [][]float64
	weatherW []float64
	timeW    []float64
	groupW   []float64
	bias     float64
}

func (b *Bundle) UserEncoder() recommend.Encoder    { return b.users }
func (b *Bundle) ItemEncoder() recommend.Encoder    { return b.items }
func (b *Bundle) WeatherEncoder() recommend.Encoder { return b.weather }
func (b *Bundle) TimeEncoder() recommend.Encoder    { return b.timeOfDay }
func (b *Bundle) GroupEncoder() recommend.Encoder   { return b.group }

// ItemVocabSize reports how many menu items the model knows. Used at
// startup to warn when the catalog and the trained vocabulary drift apart.
func (b *Bundle) ItemVocabSize() int {
	return b.items.Len()
}

// BatchPredict scores one row per position across the five parallel code
// arrays: bias + user·item embedding dot product + the context weights.
// Mismatched lengths or out-of-range codes are contract errors; the caller
// treats them as "no scores produced".
func (b *Bundle) BatchPredict(users, items, weathers, times, groups []int) ([]float64, error) {
	n := len(users)
	if len(items) != n || len(weathers) != n || len(times) != n || len(groups) != n {
		return nil, fmt.Errorf("parallel arrays disagree on length: %d/%d/%d/%d/%d",
			len(users), len(items), len(weathers), len(times), len(groups))
	}

	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		if users[i] < 0 || users[i] >= len(b.userEmb) {
			return nil, fmt.Errorf("user code %d out of range", users[i])
		}
		if items[i] < 0 || items[i] >= len(b.itemEmb) {
			return nil, fmt.Errorf("item code %d out of range", items[i])
		}
		if weathers[i] < 0 || weathers[i] >= len(b.weatherW) {
			return nil, fmt.Errorf("weather code %d out of range", weathers[i])
		}
		if times[i] < 0 || times[i] >= len(b.timeW) {
			return nil, fmt.Errorf("time code %d out of range", times[i])
		}
		if groups[i] < 0 || groups[i] >= len(b.groupW) {
			return nil, fmt.Errorf("group code %d out of range", groups[i])
		}

		u, it := b.userEmb[users[i]], b.itemEmb[items[i]]
		if len(u) != len(it) {
			return nil, fmt.Errorf("embedding dims disagree: user %d vs item %d", len(u), len(it))
		}
		dot := 0.0
		for d := range u {
			dot += u[d] * it[d]
		}
		scores[i] = b.bias + dot + b.weatherW[weathers[i]] + b.timeW[times[i]] + b.groupW[groups[i]]
	}
	return scores, nil
}

// bundleFile is the on-disk schema. Encoder vocabularies appear either
// under the current key names (user_encoder/item_encoder) or the legacy
// ones (user_id/menu_id); Load normalizes both into one canonical Bundle
// so the pipeline only ever sees the canonical shape.
type bundleFile struct {
	Version  int                 `json:"version"`
	Encoders map[string][]string `json:"encoders"`
	Weights  struct {
		UserEmbeddings [][]float64 `json:"user_embeddings"`
		ItemEmbeddings [][]float64 `json:"item_embeddings"`
		WeatherWeights []float64   `json:"weather_weights"`
		TimeWeights    []float64   `json:"time_weights"`
		GroupWeights   []float64   `json:"group_weights"`
		Bias           float64     `json:"bias"`
	} `json:"weights"`
}

func pickVocab(encoders map[string][]string, keys ...string) ([]string, bool) {
	for _, k := range keys {
		if v, ok := encoders[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// Load reads and validates a bundle file. Any missing piece, an encoder or
// a weight table alike, makes the whole bundle unusable; partial-feature
// scoring is not defined, so the error tells the caller to run without a
// model rather than with half of one.
func Load(path string) (*Bundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}

	var file bundleFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse bundle: %w", err)
	}
	return fromFile(&file)
}

func fromFile(file *bundleFile) (*Bundle, error) {
	userVocab, ok := pickVocab(file.Encoders, "user_encoder", "user_id")
	if !ok {
		return nil, fmt.Errorf("bundle has no user encoder")
	}
	itemVocab, ok := pickVocab(file.Encoders, "item_encoder", "menu_id")
	if !ok {
		return nil, fmt.Errorf("bundle has no item encoder")
	}
	weatherVocab, ok := pickVocab(file.Encoders, "weather")
	if !ok {
		return nil, fmt.Errorf("bundle has no weather encoder")
	}
	timeVocab, ok := pickVocab(file.Encoders, "time_of_day")
	if !ok {
		return nil, fmt.Errorf("bundle has no time_of_day encoder")
	}
	groupVocab, ok := pickVocab(file.Encoders, "group_size")
	if !ok {
		return nil, fmt.Errorf("bundle has no group_size encoder")
	}

	w := file.Weights
	if len(w.UserEmbeddings) != len(userVocab) {
		return nil, fmt.Errorf("user embeddings (%d) do not match vocabulary (%d)", len(w.UserEmbeddings), len(userVocab))
	}
	if len(w.ItemEmbeddings) != len(itemVocab) {
		return nil, fmt.Errorf("item embeddings (%d) do not match vocabulary (%d)", len(w.ItemEmbeddings), len(itemVocab))
	}
	if len(w.WeatherWeights) != len(weatherVocab) {
		return nil, fmt.Errorf("weather weights (%d) do not match vocabulary (%d)", len(w.WeatherWeights), len(weatherVocab))
	}
	if len(w.TimeWeights) != len(timeVocab) {
		return nil, fmt.Errorf("time weights (%d) do not match vocabulary (%d)", len(w.TimeWeights), len(timeVocab))
	}
	if len(w.GroupWeights) != len(groupVocab) {
		return nil, fmt.Errorf("group weights (%d) do not match vocabulary (%d)", len(w.GroupWeights), len(groupVocab))
	}

	return &Bundle{
		users:     NewEncoder(userVocab),
		items:     NewEncoder(itemVocab),
		weather:   NewEncoder(weatherVocab),
		timeOfDay: NewEncoder(timeVocab),
		group:     NewEncoder(groupVocab),
		userEmb:   w.UserEmbeddings,
		itemEmb:   w.ItemEmbeddings,
		weatherW:  w.WeatherWeights,
		timeW:     w.TimeWeights,
		groupW:    w.GroupWeights,
		bias:      w.Bias,
	}, nil
}
