package catalog

import (
	"testing"

	"github.com/pockettcg/facade/internal/domain/query"
)

func TestCatalog_Contains_CaseInsensitive(t *testing.T) {
	c := DefaultTypes()
	for _, v := range []string{"Lightning", "lightning", "LIGHTNING"} {
		if !c.Contains(v) {
			t.Errorf("expected catalog to contain %q", v)
		}
	}
	if c.Contains("Lighting") {
		t.Error("misspelling should not be an exact match")
	}
}

func TestCatalog_Closest(t *testing.T) {
	c := DefaultTypes()
	entry, dist := c.Closest("Lighting")
	if entry != "Lightning" {
		t.Errorf("expected Lightning, got %q", entry)
	}
	if dist != 1 {
		t.Errorf("expected distance 1, got %d", dist)
	}
}

func TestCatalog_Closest_Empty(t *testing.T) {
	c := New(nil)
	entry, dist := c.Closest("anything")
	if entry != "" || dist != -1 {
		t.Errorf("expected empty result for empty catalog, got %q/%d", entry, dist)
	}
}

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"lighting", "lightning", 1},
		{"fire", "fire", 0},
		{"chansey", "chanséy", 1},
	}
	for _, tc := range cases {
		if got := levenshtein(tc.a, tc.b); got != tc.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLibrary_Suggest_MisspelledType(t *testing.T) {
	lib := DefaultLibrary()
	got := lib.Suggest(query.Filters{query.FieldType: "Lighting"})
	if got[query.FieldType] != "Did you mean 'Lightning'?" {
		t.Errorf("unexpected suggestion: %v", got)
	}
}

func TestLibrary_Suggest_MultipleFields(t *testing.T) {
	lib := DefaultLibrary()
	got := lib.Suggest(query.Filters{
		query.FieldType:   "Watter",
		query.FieldRarity: "Rare Hollo",
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %v", got)
	}
	if got[query.FieldType] != "Did you mean 'Water'?" {
		t.Errorf("unexpected type suggestion: %q", got[query.FieldType])
	}
	if got[query.FieldRarity] != "Did you mean 'Rare Holo'?" {
		t.Errorf("unexpected rarity suggestion: %q", got[query.FieldRarity])
	}
}

func TestLibrary_Suggest_FreeTextFieldsSkipped(t *testing.T) {
	lib := DefaultLibrary()
	got := lib.Suggest(query.Filters{"name": "NonExistentXYZ", "set": "Bases"})
	if got != nil {
		t.Errorf("free-text fields must not produce suggestions, got %v", got)
	}
}

func TestLibrary_Suggest_BeyondThreshold(t *testing.T) {
	lib := DefaultLibrary()
	got := lib.Suggest(query.Filters{query.FieldType: "Electricity"})
	if _, ok := got[query.FieldType]; ok {
		t.Errorf("distant value should get no suggestion, got %v", got)
	}
}

func TestLibrary_Suggest_ExactMatchNoSuggestion(t *testing.T) {
	lib := DefaultLibrary()
	got := lib.Suggest(query.Filters{query.FieldType: "fire"})
	if got != nil {
		t.Errorf("case-insensitive exact match should get no suggestion, got %v", got)
	}
}
