package model

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const canonicalBundle = `{
	"version": 2,
	"encoders": {
		"user_encoder": ["1", "2"],
		"item_encoder": ["10", "11"],
		"weather": ["Cerah", "Hujan"],
		"time_of_day": ["Malam", "Pagi", "Siang"],
		"group_size": ["Keluarga", "Sendiri"]
	},
	"weights": {
		"user_embeddings": [[1.0, 0.0], [0.0, 1.0]],
		"item_embeddings": [[2.0, 3.0], [4.0, 5.0]],
		"weather_weights": [0.1, 0.2],
		"time_weights": [0.0, 0.0, 0.3],
		"group_weights": [0.2, 0.5],
		"bias": 0.5
	}
}`

func writeBundle(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bundle.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}
	return path
}

func TestLoadCanonicalKeys(t *testing.T) {
	bundle, err := Load(writeBundle(t, canonicalBundle))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !bundle.UserEncoder().Contains("2") {
		t.Error("user encoder should contain 2")
	}
	if bundle.UserEncoder().Contains("99") {
		t.Error("user encoder should not contain 99")
	}
	code, ok := bundle.ItemEncoder().Transform("11")
	if !ok || code != 1 {
		t.Errorf("expected item 11 -> 1, got %d (ok=%v)", code, ok)
	}
	if bundle.ItemVocabSize() != 2 {
		t.Errorf("expected item vocab size 2, got %d", bundle.ItemVocabSize())
	}
}

func TestLoadLegacyKeys(t *testing.T) {
	legacy := strings.Replace(canonicalBundle, "user_encoder", "user_id", 1)
	legacy = strings.Replace(legacy, "item_encoder", "menu_id", 1)

	bundle, err := Load(writeBundle(t, legacy))
	if err != nil {
		t.Fatalf("Load legacy bundle: %v", err)
	}
	if !bundle.UserEncoder().Contains("1") || !bundle.ItemEncoder().Contains("10") {
		t.Error("legacy keys must normalize to the same encoders")
	}
}

func TestLoadRejectsIncompleteBundle(t *testing.T) {
	// Partial bundles are treated the same as fully absent ones.
	missingGroup := strings.Replace(canonicalBundle, `"group_size"`, `"group_size_gone"`, 1)
	if _, err := Load(writeBundle(t, missingGroup)); err == nil {
		t.Error("expected error for missing group_size encoder")
	}

	badWeights := strings.Replace(canonicalBundle,
		`"weather_weights": [0.1, 0.2]`, `"weather_weights": [0.1]`, 1)
	if _, err := Load(writeBundle(t, badWeights)); err == nil {
		t.Error("expected error for weight/vocabulary mismatch")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBatchPredict(t *testing.T) {
	bundle, err := Load(writeBundle(t, canonicalBundle))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	scores, err := bundle.BatchPredict(
		[]int{0, 1},
		[]int{0, 1},
		[]int{1, 0},
		[]int{2, 0},
		[]int{0, 1},
	)
	if err != nil {
		t.Fatalf("BatchPredict: %v", err)
	}

	// row 0: 0.5 + (1*2 + 0*3) + 0.2 + 0.3 + 0.2 = 3.2
	// row 1: 0.5 + (0*4 + 1*5) + 0.1 + 0.0 + 0.5 = 6.1
	want := []float64{3.2, 6.1}
	for i := range want {
		if math.Abs(scores[i]-want[i]) > 1e-9 {
			t.Errorf("row %d: expected %f, got %f", i, want[i], scores[i])
		}
	}
}

func TestBatchPredictContractErrors(t *testing.T) {
	bundle, err := Load(writeBundle(t, canonicalBundle))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := bundle.BatchPredict([]int{0}, []int{0, 1}, []int{0}, []int{0}, []int{0}); err == nil {
		t.Error("expected error for mismatched array lengths")
	}
	if _, err := bundle.BatchPredict([]int{5}, []int{0}, []int{0}, []int{0}, []int{0}); err == nil {
		t.Error("expected error for out-of-range user code")
	}
	if _, err := bundle.BatchPredict([]int{0}, []int{0}, []int{9}, []int{0}, []int{0}); err == nil {
		t.Error("expected error for out-of-range weather code")
	}
}

func TestEncoder(t *testing.T) {
	enc := NewEncoder([]string{"Cerah", "Hujan"})

	if !enc.Contains("Hujan") {
		t.Error("expected Hujan in vocabulary")
	}
	if enc.Contains("Gerimis") {
		t.Error("Gerimis should be outside the vocabulary")
	}
	code, ok := enc.Transform("Hujan")
	if !ok || code != 1 {
		t.Errorf("expected Hujan -> 1, got %d (ok=%v)", code, ok)
	}
	if _, ok := enc.Transform("Gerimis"); ok {
		t.Error("unknown value must not encode")
	}
	if enc.Len() != 2 {
		t.Errorf("expected Len 2, got %d", enc.Len())
	}
}
