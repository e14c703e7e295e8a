// Package catalog holds the storefront's product filter and sort pipeline
// together with the category registry and facet helpers. Everything here is
// a pure function over in-memory products.
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/devkeshravani/engagewise-commerce-76/models"
)

type predicate func(p *models.Product) bool

// Filter returns the products matching state, ordered by state.Sort. The
// input slice is never modified; the result is always a fresh slice.
//
// Stages run in a fixed order (search, category, subcategory, price, colors,
// sizes, tags). They are conjunctive, so the order only decides how early
// the working set shrinks.
func Filter(products []models.Product, state models.FilterState, registry *Registry) []models.Product {
	working := make([]models.Product, len(products))
	copy(working, products)

	for _, keep := range stages(state, registry) {
		if len(working) == 0 {
			break
		}
		working = slices.DeleteFunc(working, func(p models.Product) bool {
			return !keep(&p)
		})
	}

	Sort(working, state.Sort)
	return working
}

func stages(state models.FilterState, registry *Registry) []predicate {
	var out []predicate

	if term := strings.ToLower(strings.TrimSpace(state.Search)); term != "" {
		out = append(out, func(p *models.Product) bool {
			return matchesSearch(p, term)
		})
	}

	if state.Category != "" {
		selector := strings.ToLower(strings.TrimSpace(state.Category))
		resolved := strings.ToLower(registry.ResolveName(state.Category))
		out = append(out, func(p *models.Product) bool {
			category := strings.ToLower(p.Category)
			return category == resolved || category == selector
		})
	}

	if state.Subcategory != "" {
		subcategory := strings.TrimSpace(state.Subcategory)
		out = append(out, func(p *models.Product) bool {
			return strings.EqualFold(p.Subcategory, subcategory)
		})
	}

	if band := state.PriceBand; band != nil {
		out = append(out, func(p *models.Product) bool {
			return band.Contains(p.Price)
		})
	}

	if len(state.Colors) > 0 {
		wanted := lowerSet(state.Colors)
		out = append(out, func(p *models.Product) bool {
			return anyIn(p.Colors, wanted, strings.ToLower)
		})
	}

	if len(state.Sizes) > 0 {
		wanted := make(map[string]struct{}, len(state.Sizes))
		for _, s := range state.Sizes {
			wanted[s] = struct{}{}
		}
		out = append(out, func(p *models.Product) bool {
			return anyIn(p.Sizes, wanted, nil)
		})
	}

	if len(state.Tags) > 0 {
		wanted := lowerSet(state.Tags)
		out = append(out, func(p *models.Product) bool {
			return anyIn(p.Tags, wanted, strings.ToLower)
		})
	}

	return out
}

// matchesSearch expects term already lower-cased.
func matchesSearch(p *models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term) ||
		strings.Contains(strings.ToLower(p.Subcategory), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}

func anyIn(values []string, wanted map[string]struct{}, normalize func(string) string) bool {
	for _, v := range values {
		if normalize != nil {
			v = normalize(v)
		}
		if _, ok := wanted[v]; ok {
			return true
		}
	}
	return false
}

// Sort orders products in place with a stable sort. Unknown keys fall back
// to featured.
//
// SortNewest compares ids in reverse lexicographic order. Products carry no
// creation timestamp the storefront trusts, so this is an approximation of
// recency ("product-9" sorts before "product-10").
func Sort(products []models.Product, key models.SortKey) {
	slices.SortStableFunc(products, comparator(key))
}

func comparator(key models.SortKey) func(a, b models.Product) int {
	switch key {
	case models.SortPriceAsc:
		return func(a, b models.Product) int { return a.Price.Cmp(b.Price) }
	case models.SortPriceDesc:
		return func(a, b models.Product) int { return b.Price.Cmp(a.Price) }
	case models.SortNewest:
		return func(a, b models.Product) int { return strings.Compare(b.ID, a.ID) }
	case models.SortRatingDesc:
		return func(a, b models.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	default:
		return func(a, b models.Product) int {
			if a.Featured != b.Featured {
				if a.Featured {
					return -1
				}
				return 1
			}
			return cmp.Compare(b.Rating, a.Rating)
		}
	}
}
