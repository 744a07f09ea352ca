// Package query normalizes raw request parameters into validated filter
// sets and pagination specs.
package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pockettcg/facade/internal/domain"
)

// Pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// Filter field names with a known enumerated catalog. Free-text fields
// (name, set) are deliberately absent.
const (
	FieldType      = "type"
	FieldRarity    = "rarity"
	FieldSupertype = "supertype"
	FieldSubtype   = "subtype"
)

// CardFilterKeys are the filter parameters accepted by the cards listing.
var CardFilterKeys = []string{"name", "set", FieldType, FieldRarity, FieldSupertype, FieldSubtype}

// SetFilterKeys are the filter parameters accepted by the sets listing.
var SetFilterKeys = []string{"name"}

// Filters is a validated filter set. Only intentionally provided keys are
// present; absent or blank parameters are omitted, never defaulted to "".
type Filters map[string]string

// NormalizeFilters extracts the allowed filter keys from raw query values.
// Unknown keys are ignored so the upstream receives only intentional filters.
func NormalizeFilters(values url.Values, allowed []string) Filters {
	f := make(Filters)
	for _, key := range allowed {
		v := strings.TrimSpace(values.Get(key))
		if v != "" {
			f[key] = v
		}
	}
	return f
}

// IsEmpty reports whether no filters were provided.
func (f Filters) IsEmpty() bool { return len(f) == 0 }

// Pagination is a validated pagination spec. Both fields are >= 1.
type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination validates the page and limit parameters, applying defaults
// when absent. Non-numeric or non-positive values are a validation error,
// not silently clamped.
func ParsePagination(values url.Values) (Pagination, error) {
	page, err := parsePositive(values, "page", DefaultPage)
	if err != nil {
		return Pagination{}, err
	}
	limit, err := parsePositive(values, "limit", DefaultLimit)
	if err != nil {
		return Pagination{}, err
	}
	return Pagination{Page: page, Limit: limit}, nil
}

func parsePositive(values url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrValidation, key, raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s must be >= 1, got %d", domain.ErrValidation, key, n)
	}
	return n, nil
}

// RequireParam returns a required non-blank parameter or a validation error.
func RequireParam(values url.Values, key string) (string, error) {
	v := strings.TrimSpace(values.Get(key))
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", domain.ErrValidation, key)
	}
	return v, nil
}
