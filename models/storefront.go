// ════════════════════════════════════════════════════════════
// STOREFRONT RESPONSE MODELS
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

import (
	"github.com/shopspring/decimal"
)

// StorefrontProductResponse is the thin product card used by grids.
type StorefrontProductResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Image         string           `json:"image"`
	Price         decimal.Decimal  `json:"price" swaggertype:"string"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty" swaggertype:"string"`
	Category      string           `json:"category"`
	Rating        float64          `json:"rating"`
	Featured      bool             `json:"featured"`
}

// StorefrontProductList is the body of the filtered grid.
type StorefrontProductList struct {
	Title    string                      `json:"title"`
	Filters  FilterState                 `json:"filters"`
	Products []StorefrontProductResponse `json:"products"`
}

// StorefrontProductDetail is the product page payload.
type StorefrontProductDetail struct {
	Product
	SelectedColor string `json:"selected_color"`
	SelectedSize  string `json:"selected_size"`
	Wishlisted    bool   `json:"wishlisted"`
}

// SearchSuggestion is one entry of the search-as-you-type dropdown.
type SearchSuggestion struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
	Price    decimal.Decimal `json:"price" swaggertype:"string"`
}

// ToCard converts a catalog product into its grid card.
func ToCard(p Product, image string) StorefrontProductResponse {
	return StorefrontProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Image:         image,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Rating:        p.Rating,
		Featured:      p.Featured,
	}
}
