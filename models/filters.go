package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SortKey selects the ordering of the product grid.
type SortKey string

const (
	SortFeatured   SortKey = "featured"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortNewest     SortKey = "newest"
	SortRatingDesc SortKey = "rating-desc"
)

// sortAliases maps the storefront's older select values onto sort keys.
var sortAliases = map[string]SortKey{
	"price-low":  SortPriceAsc,
	"price-high": SortPriceDesc,
	"rating":     SortRatingDesc,
}

// ParseSortKey accepts a sort key or one of its aliases. The empty string
// means the default, featured.
func ParseSortKey(raw string) (SortKey, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	switch SortKey(raw) {
	case "":
		return SortFeatured, nil
	case SortFeatured, SortPriceAsc, SortPriceDesc, SortNewest, SortRatingDesc:
		return SortKey(raw), nil
	}
	if key, ok := sortAliases[raw]; ok {
		return key, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, raw)
}

// PriceBand is either closed [Min, Max] or open-ended [Min, ∞) when Max is nil.
type PriceBand struct {
	Min decimal.Decimal  `json:"min" swaggertype:"string"`
	Max *decimal.Decimal `json:"max,omitempty" swaggertype:"string"`
}

// Contains reports whether price lies inside the band, bounds inclusive.
func (b PriceBand) Contains(price decimal.Decimal) bool {
	if price.LessThan(b.Min) {
		return false
	}
	return b.Max == nil || price.LessThanOrEqual(*b.Max)
}

// String renders the band in its query form: "25-50" or "200".
func (b PriceBand) String() string {
	if b.Max == nil {
		return b.Min.String()
	}
	return b.Min.String() + "-" + b.Max.String()
}

// FilterState is the full set of facet selections for one grid render.
// Empty slices and empty strings mean "no constraint".
type FilterState struct {
	Category    string     `json:"category,omitempty"`
	Subcategory string     `json:"subcategory,omitempty"`
	PriceBand   *PriceBand `json:"price_band,omitempty"`
	Colors      []string   `json:"colors,omitempty"`
	Sizes       []string   `json:"sizes,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Search      string     `json:"search,omitempty"`
	Sort        SortKey    `json:"sort"`
}

// HasFacets reports whether any narrowing selection is active.
func (s FilterState) HasFacets() bool {
	return s.Search != "" ||
		s.Category != "" ||
		s.Subcategory != "" ||
		s.PriceBand != nil ||
		len(s.Colors) > 0 ||
		len(s.Sizes) > 0 ||
		len(s.Tags) > 0
}

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Categories []CategoryData   `json:"categories"`
	Colors     []string         `json:"colors"`
	Sizes      []string         `json:"sizes"`
	Tags       []string         `json:"tags"`
	PriceRange *PriceRangeData  `json:"priceRange"`
	PriceBands []PriceBandLabel `json:"priceBands"`
}

// CategoryData represents a category with its subcategories
type CategoryData struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories,omitempty"`
	ProductCount  int      `json:"productCount"`
}

// PriceRangeData represents the minimum and maximum price in the store
type PriceRangeData struct {
	Min decimal.Decimal `json:"min" swaggertype:"string"`
	Max decimal.Decimal `json:"max" swaggertype:"string"`
}

// PriceBandLabel is one selectable price band, e.g. {"25-50", "$25 - $50"}.
type PriceBandLabel struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
