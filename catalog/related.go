package catalog

import (
	"strings"

	"github.com/devkeshravani/engagewise-commerce-76/models"
)

const (
	// SuggestionLimit caps the search-as-you-type dropdown.
	SuggestionLimit = 5
	// SimilarLimit caps the "You Might Also Like" strip.
	SimilarLimit = 4
)

// FindByID returns the product with id.
func FindByID(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Suggestions returns up to limit products whose name, category,
// description or tags contain query. Queries shorter than two characters
// return nothing.
func Suggestions(products []models.Product, query string, limit int) []models.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(term)) < 2 || limit <= 0 {
		return []models.Product{}
	}
	out := make([]models.Product, 0, limit)
	for i := range products {
		p := &products[i]
		if !matchesSuggestion(p, term) {
			continue
		}
		out = append(out, *p)
		if len(out) == limit {
			break
		}
	}
	return out
}

func matchesSuggestion(p *models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Category), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Similar returns up to limit other products of the same category, in
// catalog order.
func Similar(products []models.Product, product models.Product, limit int) []models.Product {
	out := make([]models.Product, 0, limit)
	for _, p := range products {
		if len(out) == limit {
			break
		}
		if p.ID != product.ID && p.Category == product.Category {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns count products: featured ones first, topped up with
// non-featured products in catalog order when there are not enough.
func Featured(products []models.Product, count int) []models.Product {
	if count <= 0 {
		return []models.Product{}
	}
	out := make([]models.Product, 0, count)
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
			if len(out) == count {
				return out
			}
		}
	}
	for _, p := range products {
		if !p.Featured {
			out = append(out, p)
			if len(out) == count {
				break
			}
		}
	}
	return out
}
