// Package catalog holds the fixed enumerated value sets for filterable
// fields and the spelling-correction matching used for not-found responses.
package catalog

import (
	"strings"

	"github.com/pockettcg/facade/internal/domain/query"
)

// MaxSuggestionDistance is the largest edit distance at which a catalog
// entry is still offered as a spelling correction.
const MaxSuggestionDistance = 2

// Catalog is an immutable enumerated set of valid values for one field.
type Catalog struct {
	values []string
	lower  map[string]string
}

// New builds a catalog from its value list.
func New(values []string) Catalog {
	lower := make(map[string]string, len(values))
	for _, v := range values {
		lower[strings.ToLower(v)] = v
	}
	return Catalog{values: values, lower: lower}
}

// Values returns the catalog entries in their declared order.
func (c Catalog) Values() []string { return c.values }

// Contains reports whether value matches a catalog entry case-insensitively.
func (c Catalog) Contains(value string) bool {
	_, ok := c.lower[strings.ToLower(value)]
	return ok
}

// Closest returns the catalog entry with minimum edit distance to value,
// comparing case-insensitively. Returns ("", -1) for an empty catalog.
func (c Catalog) Closest(value string) (string, int) {
	best, bestDist := "", -1
	lv := strings.ToLower(value)
	for _, entry := range c.values {
		d := levenshtein(lv, strings.ToLower(entry))
		if bestDist < 0 || d < bestDist {
			best, bestDist = entry, d
		}
	}
	return best, bestDist
}

// Library groups the four catalogs keyed by filter field name.
type Library struct {
	byField map[string]Catalog
}

// NewLibrary builds a library from the four catalogs.
func NewLibrary(types, supertypes, subtypes, rarities Catalog) *Library {
	return &Library{byField: map[string]Catalog{
		query.FieldType:      types,
		query.FieldSupertype: supertypes,
		query.FieldSubtype:   subtypes,
		query.FieldRarity:    rarities,
	}}
}

// ForField returns the catalog backing a filter field, if any. Free-text
// fields (name, set) have no catalog.
func (l *Library) ForField(field string) (Catalog, bool) {
	c, ok := l.byField[field]
	return c, ok
}

// Suggest inspects catalog-backed filters with no exact match and returns
// a "Did you mean" message per field whose closest entry is within
// MaxSuggestionDistance. Fields without a catalog are skipped.
func (l *Library) Suggest(filters query.Filters) map[string]string {
	var suggestions map[string]string
	for field, value := range filters {
		cat, ok := l.byField[field]
		if !ok || value == "" || cat.Contains(value) {
			continue
		}
		entry, dist := cat.Closest(value)
		if dist < 0 || dist > MaxSuggestionDistance {
			continue
		}
		if suggestions == nil {
			suggestions = make(map[string]string)
		}
		suggestions[field] = "Did you mean '" + entry + "'?"
	}
	return suggestions
}

// levenshtein computes the edit distance between two strings using the
// two-row dynamic programming form.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
