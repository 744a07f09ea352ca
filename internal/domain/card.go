package domain

// Card is a single trading card as reported by the upstream provider.
// Required fields are always populated by the upstream; optional pricing
// data is modeled explicitly so shape drift cannot leak into responses.
type Card struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Supertype string     `json:"supertype,omitempty"`
	Subtypes  []string   `json:"subtypes,omitempty"`
	HP        string     `json:"hp,omitempty"`
	Types     []string   `json:"types,omitempty"`
	Rarity    string     `json:"rarity,omitempty"`
	Set       SetInfo    `json:"set"`
	Number    string     `json:"number,omitempty"`
	Artist    string     `json:"artist,omitempty"`
	Images    Images     `json:"images,omitempty"`
	TCGPlayer *TCGPlayer `json:"tcgplayer,omitempty"`
}

// SetInfo is the set block embedded in a card record.
type SetInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Series string `json:"series,omitempty"`
}

// Images holds card artwork URLs.
type Images struct {
	Small string `json:"small,omitempty"`
	Large string `json:"large,omitempty"`
}

// TCGPlayer is the pricing sub-structure of a card. Prices is keyed by
// print variant (holofoil, normal, reverseHolofoil, ...).
type TCGPlayer struct {
	URL       string                  `json:"url,omitempty"`
	UpdatedAt string                  `json:"updatedAt,omitempty"`
	Prices    map[string]PriceVariant `json:"prices,omitempty"`
}

// PriceVariant holds the price figures for one print variant. All fields
// are optional upstream, hence pointers.
type PriceVariant struct {
	Low       *float64 `json:"low,omitempty"`
	Mid       *float64 `json:"mid,omitempty"`
	High      *float64 `json:"high,omitempty"`
	Market    *float64 `json:"market,omitempty"`
	DirectLow *float64 `json:"directLow,omitempty"`
}

// HasPrices reports whether the card carries any pricing data.
func (c *Card) HasPrices() bool {
	return c.TCGPlayer != nil && len(c.TCGPlayer.Prices) > 0
}

// Set is a card set (expansion) record.
type Set struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Series       string `json:"series,omitempty"`
	PrintedTotal int    `json:"printedTotal,omitempty"`
	Total        int    `json:"total,omitempty"`
	ReleaseDate  string `json:"releaseDate,omitempty"`
}

// CardPage is one page of card results. TotalCount is the upstream-reported
// total across all pages; 0 means the upstream did not report one.
type CardPage struct {
	Cards      []Card
	TotalCount int
}

// SetPage is one page of set results.
type SetPage struct {
	Sets       []Set
	TotalCount int
}
