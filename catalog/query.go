package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/shopspring/decimal"
)

// ParsePriceBand reads the storefront's price band notation:
//
//	"25-50"  closed band [25, 50]
//	"200"    open band [200, ∞)
//	"200-"   open band [200, ∞)
//
// Empty input yields a nil band. Non-numeric, negative or inverted bounds
// are rejected.
func ParsePriceBand(raw string) (*models.PriceBand, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	lo, hi, closed := strings.Cut(raw, "-")
	lower, err := parseBound(lo)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", models.ErrInvalidPriceBand, raw, err)
	}
	band := &models.PriceBand{Min: lower}

	if closed && strings.TrimSpace(hi) != "" {
		upper, err := parseBound(hi)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", models.ErrInvalidPriceBand, raw, err)
		}
		if upper.LessThan(lower) {
			return nil, fmt.Errorf("%w: %q: max below min", models.ErrInvalidPriceBand, raw)
		}
		band.Max = &upper
	}
	return band, nil
}

func parseBound(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative bound %s", d)
	}
	return d, nil
}

// ParseFilterState builds a FilterState from grid query parameters. It is
// the only place malformed input is rejected; Filter assumes a valid state.
//
// Recognised keys: search (or q), category, subcategory, price (or
// priceRange), color, size, tag (repeatable or comma separated) and sort
// (or sortBy).
func ParseFilterState(values url.Values) (models.FilterState, error) {
	state := models.FilterState{
		Search:      strings.TrimSpace(first(values, "search", "q")),
		Category:    strings.TrimSpace(values.Get("category")),
		Subcategory: strings.TrimSpace(values.Get("subcategory")),
		Colors:      multi(values, "color", "colors"),
		Sizes:       multi(values, "size", "sizes"),
		Tags:        multi(values, "tag", "tags"),
	}

	band, err := ParsePriceBand(first(values, "price", "priceRange"))
	if err != nil {
		return models.FilterState{}, err
	}
	state.PriceBand = band

	sort, err := models.ParseSortKey(first(values, "sort", "sortBy"))
	if err != nil {
		return models.FilterState{}, err
	}
	state.Sort = sort

	return state, nil
}

// Encode renders state back into query parameters, the inverse of
// ParseFilterState.
func Encode(state models.FilterState) url.Values {
	v := url.Values{}
	if state.Search != "" {
		v.Set("search", state.Search)
	}
	if state.Category != "" {
		v.Set("category", state.Category)
	}
	if state.Subcategory != "" {
		v.Set("subcategory", state.Subcategory)
	}
	if state.PriceBand != nil {
		v.Set("price", state.PriceBand.String())
	}
	for _, c := range state.Colors {
		v.Add("color", c)
	}
	for _, s := range state.Sizes {
		v.Add("size", s)
	}
	for _, t := range state.Tags {
		v.Add("tag", t)
	}
	if state.Sort != "" && state.Sort != models.SortFeatured {
		v.Set("sort", string(state.Sort))
	}
	return v
}

func first(values url.Values, keys ...string) string {
	for _, k := range keys {
		if v := values.Get(k); v != "" {
			return v
		}
	}
	return ""
}

// multi collects repeatable values, splitting on commas and dropping
// blanks and exact duplicates while keeping first-seen order.
func multi(values url.Values, keys ...string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, k := range keys {
		for _, raw := range values[k] {
			for _, part := range strings.Split(raw, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				if _, dup := seen[part]; dup {
					continue
				}
				seen[part] = struct{}{}
				out = append(out, part)
			}
		}
	}
	return out
}
