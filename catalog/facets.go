package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/shopspring/decimal"
)

// PriceBands are the selectable bands shown in the price facet.
var PriceBands = []string{"0-25", "25-50", "50-100", "100-200", "200"}

// Facets collects every filter option the catalog can offer.
func Facets(products []models.Product, registry *Registry) models.FilterMetadata {
	colors := map[string]struct{}{}
	sizes := map[string]struct{}{}
	tags := map[string]struct{}{}
	counts := map[string]int{}

	var low, high decimal.Decimal
	for i, p := range products {
		for _, c := range p.Colors {
			colors[c] = struct{}{}
		}
		for _, s := range p.Sizes {
			sizes[s] = struct{}{}
		}
		for _, t := range p.Tags {
			tags[t] = struct{}{}
		}
		counts[strings.ToLower(p.Category)]++

		if i == 0 || p.Price.LessThan(low) {
			low = p.Price
		}
		if i == 0 || p.Price.GreaterThan(high) {
			high = p.Price
		}
	}

	meta := models.FilterMetadata{
		Categories: make([]models.CategoryData, 0, registry.Len()),
		Colors:     sortedKeys(colors),
		Sizes:      SortSizes(keys(sizes)),
		Tags:       sortedKeys(tags),
		PriceRange: &models.PriceRangeData{Min: low, Max: high},
		PriceBands: make([]models.PriceBandLabel, 0, len(PriceBands)),
	}
	for _, c := range registry.Categories() {
		meta.Categories = append(meta.Categories, models.CategoryData{
			ID:            c.ID,
			Name:          c.Name,
			Subcategories: c.Subcategories,
			ProductCount:  counts[strings.ToLower(c.Name)],
		})
	}
	for _, b := range PriceBands {
		meta.PriceBands = append(meta.PriceBands, models.PriceBandLabel{Value: b, Label: PriceBandLabel(b)})
	}
	return meta
}

// PriceBandLabel renders "25-50" as "$25 - $50" and "200" as "$200+".
func PriceBandLabel(band string) string {
	if lo, hi, ok := strings.Cut(band, "-"); ok && hi != "" {
		return fmt.Sprintf("$%s - $%s", lo, hi)
	}
	return "$" + strings.TrimSuffix(band, "-") + "+"
}

// SortSizes orders sizes canonically (XS, S, M, L, XL, XXL). Tokens outside
// the canonical list go last, alphabetically.
func SortSizes(sizes []string) []string {
	out := slices.Clone(sizes)
	slices.SortFunc(out, func(a, b string) int {
		ra, rb := models.SizeRank(a), models.SizeRank(b)
		switch {
		case ra >= 0 && rb >= 0:
			return ra - rb
		case ra >= 0:
			return -1
		case rb >= 0:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})
	return out
}

// Title is the heading of the product grid for state.
func Title(state models.FilterState, registry *Registry) string {
	if state.Search != "" {
		return fmt.Sprintf("Search Results: %q", state.Search)
	}
	category, known := registry.Resolve(state.Category)
	if state.Subcategory != "" {
		if state.Category != "" && known {
			return state.Subcategory + " " + category.Name
		}
		return state.Subcategory
	}
	if state.Category != "" {
		if known {
			return category.Name
		}
		return state.Category
	}
	return "All Products"
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := keys(set)
	slices.Sort(out)
	return out
}
