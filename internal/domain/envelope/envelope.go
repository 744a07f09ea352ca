// Package envelope defines the uniform JSON wrapper returned for every
// facade response. A response carries exactly one variant, tagged by Status.
package envelope

import "github.com/pockettcg/facade/internal/domain/query"

// Status tags the envelope variant.
type Status string

const (
	// StatusSuccess is a populated result (list, single record, or prices).
	StatusSuccess Status = "success"
	// StatusNotFound is a domain-level absence, not a failure.
	StatusNotFound Status = "not_found"
	// StatusNoPriceData is a successful card lookup without pricing data.
	StatusNoPriceData Status = "no_price_data"
	// StatusError covers validation failures and upstream errors.
	StatusError Status = "error"
)

// Pagination is the page metadata attached to list responses.
type Pagination struct {
	TotalItems   int `json:"total_items"`
	TotalPages   int `json:"total_pages"`
	CurrentPage  int `json:"current_page"`
	ItemsPerPage int `json:"items_per_page"`
}

// NewPagination computes page metadata: total_pages = ceil(total/limit).
func NewPagination(totalItems int, pg query.Pagination) *Pagination {
	return &Pagination{
		TotalItems:   totalItems,
		TotalPages:   (totalItems + pg.Limit - 1) / pg.Limit,
		CurrentPage:  pg.Page,
		ItemsPerPage: pg.Limit,
	}
}

// Envelope is the uniform response wrapper. Only the fields of the active
// variant are populated; the rest stay empty and are omitted from JSON.
type Envelope struct {
	Status      Status            `json:"status"`
	Data        any               `json:"data,omitempty"`
	Pagination  *Pagination       `json:"pagination,omitempty"`
	Query       query.Filters     `json:"query,omitempty"`
	Message     string            `json:"message,omitempty"`
	Suggestions map[string]string `json:"suggestions,omitempty"`
	CardName    string            `json:"card_name,omitempty"`
	CardID      string            `json:"card_id,omitempty"`
	SetID       string            `json:"set_id,omitempty"`
	Prices      map[string]any    `json:"prices,omitempty"`
	Details     string            `json:"details,omitempty"`
}

// Success wraps a list result with its pagination metadata.
func Success(data any, pagination *Pagination) Envelope {
	return Envelope{Status: StatusSuccess, Data: data, Pagination: pagination}
}

// SuccessSingle wraps a single-record result.
func SuccessSingle(data any) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// SuccessPrices wraps a resolved price lookup.
func SuccessPrices(cardName, cardID string, prices map[string]any) Envelope {
	return Envelope{Status: StatusSuccess, CardName: cardName, CardID: cardID, Prices: prices}
}

// NotFound reports an empty list result, echoing the filter set and any
// spelling-correction suggestions.
func NotFound(q query.Filters, message string, suggestions map[string]string) Envelope {
	return Envelope{Status: StatusNotFound, Query: q, Message: message, Suggestions: suggestions}
}

// NotFoundCard reports a missing card by id.
func NotFoundCard(cardID, message string) Envelope {
	return Envelope{Status: StatusNotFound, CardID: cardID, Message: message}
}

// NotFoundSet reports a missing set by id.
func NotFoundSet(setID, message string) Envelope {
	return Envelope{Status: StatusNotFound, SetID: setID, Message: message}
}

// NoPriceData reports a successful card lookup with no pricing data.
func NoPriceData(cardName, cardID string) Envelope {
	return Envelope{
		Status:   StatusNoPriceData,
		CardName: cardName,
		CardID:   cardID,
		Message:  "No price data available for this card",
	}
}

// Error normalizes a failure into the error variant. details may be empty.
func Error(message, details string) Envelope {
	return Envelope{Status: StatusError, Message: message, Details: details}
}
