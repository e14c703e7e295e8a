package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var defaultCategories []byte

// Registry resolves category selectors. A selector is either a slug
// ("casual-bottoms") or a display name ("Casual Bottoms"), matched
// case-insensitively.
type Registry struct {
	categories []models.Category
	index      map[string]int
}

// NewRegistry builds a registry over categories in the given order.
func NewRegistry(categories []models.Category) *Registry {
	r := &Registry{
		categories: make([]models.Category, len(categories)),
		index:      make(map[string]int, len(categories)*2),
	}
	copy(r.categories, categories)
	for i, c := range r.categories {
		// slugs win over names when both collide
		if _, taken := r.index[strings.ToLower(c.Name)]; !taken {
			r.index[strings.ToLower(c.Name)] = i
		}
		r.index[strings.ToLower(c.ID)] = i
	}
	return r
}

// LoadRegistry parses a YAML category list.
func LoadRegistry(data []byte) (*Registry, error) {
	var categories []models.Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse category registry: %w", err)
	}
	for i := range categories {
		if categories[i].ID == "" || categories[i].Name == "" {
			return nil, fmt.Errorf("parse category registry: entry %d needs id and name", i)
		}
		categories[i].Position = i
	}
	return NewRegistry(categories), nil
}

// DefaultRegistry returns the registry shipped with the binary.
func DefaultRegistry() (*Registry, error) {
	return LoadRegistry(defaultCategories)
}

// Resolve looks a selector up by slug or display name.
func (r *Registry) Resolve(selector string) (models.Category, bool) {
	if r == nil {
		return models.Category{}, false
	}
	i, ok := r.index[strings.ToLower(strings.TrimSpace(selector))]
	if !ok {
		return models.Category{}, false
	}
	return r.categories[i], true
}

// ResolveName returns the display name for selector, or the selector
// itself when nothing matches.
func (r *Registry) ResolveName(selector string) string {
	if c, ok := r.Resolve(selector); ok {
		return c.Name
	}
	return selector
}

// Categories returns a copy of the registry in display order.
func (r *Registry) Categories() []models.Category {
	if r == nil {
		return nil
	}
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Len is the number of registered categories.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.categories)
}
