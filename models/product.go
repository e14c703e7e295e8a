package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Canonical sizes
// ═══════════════════════════════════════════════════════════

// CanonicalSizes lists the size tokens in display order.
var CanonicalSizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

// SizeRank returns the canonical position of a size token, or -1 when the
// token is not a canonical size.
func SizeRank(size string) int {
	for i, s := range CanonicalSizes {
		if s == size {
			return i
		}
	}
	return -1
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product is a catalog entry. It is read-only for the lifetime of a
// browsing session; the catalog provider owns it.
type Product struct {
	ID            string                      `json:"id" gorm:"primaryKey" example:"product-12"`
	Name          string                      `json:"name" gorm:"not null;index"`
	Description   string                      `json:"description" gorm:"not null"`
	Price         decimal.Decimal             `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0" swaggertype:"string" example:"49.99"`
	OriginalPrice *decimal.Decimal            `json:"original_price,omitempty" gorm:"type:numeric(12,2)" swaggertype:"string"`
	Images        datatypes.JSONSlice[string] `json:"images" gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string"`
	Category      string                      `json:"category" gorm:"not null;index"`
	Subcategory   string                      `json:"subcategory" gorm:"not null"`
	Featured      bool                        `json:"featured" gorm:"default:false;index"`
	Rating        float64                     `json:"rating" gorm:"type:numeric(2,1);default:0"`
	Reviews       []Review                    `json:"reviews,omitempty" gorm:"foreignKey:ProductID;references:ID"`
	Colors        datatypes.JSONSlice[string] `json:"colors" gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string"`
	Sizes         datatypes.JSONSlice[string] `json:"sizes" gorm:"type:jsonb;not null;default:'[]'" swaggertype:"array,string"`
	Tags          datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb;not null;default:'[]';index:,type:gin" swaggertype:"array,string"`
	CreatedAt     time.Time                   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// OnSale reports whether the product carries a discount marker.
func (p Product) OnSale() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price)
}

// PrimaryImage returns the first image reference.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// DefaultColor is the color preselected on the product page.
func (p Product) DefaultColor() string {
	if len(p.Colors) == 0 {
		return ""
	}
	return p.Colors[0]
}

// DefaultSize is the size preselected on the product page.
func (p Product) DefaultSize() string {
	if len(p.Sizes) == 0 {
		return ""
	}
	return p.Sizes[0]
}

// Validate checks the catalog invariants of a single product.
func (p Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidProduct)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: %s has a negative price", ErrInvalidProduct, p.ID)
	}
	if p.OriginalPrice != nil && p.OriginalPrice.LessThan(p.Price) {
		return fmt.Errorf("%w: %s original price is below price", ErrInvalidProduct, p.ID)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("%w: %s has no images", ErrInvalidProduct, p.ID)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("%w: %s rating %.1f out of range", ErrInvalidProduct, p.ID, p.Rating)
	}
	if len(p.Colors) == 0 || hasDuplicates(p.Colors, strings.ToLower) {
		return fmt.Errorf("%w: %s colors must be non-empty and unique", ErrInvalidProduct, p.ID)
	}
	if len(p.Sizes) == 0 || hasDuplicates(p.Sizes, nil) {
		return fmt.Errorf("%w: %s sizes must be non-empty and unique", ErrInvalidProduct, p.ID)
	}
	last := -1
	for _, s := range p.Sizes {
		rank := SizeRank(s)
		if rank < 0 {
			return fmt.Errorf("%w: %s unknown size %q", ErrInvalidProduct, p.ID, s)
		}
		if rank < last {
			return fmt.Errorf("%w: %s sizes out of canonical order", ErrInvalidProduct, p.ID)
		}
		last = rank
	}
	if hasDuplicates(p.Tags, strings.ToLower) {
		return fmt.Errorf("%w: %s tags must be unique", ErrInvalidProduct, p.ID)
	}
	return nil
}

func hasDuplicates(values []string, normalize func(string) string) bool {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if normalize != nil {
			v = normalize(v)
		}
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Reviews
// ═══════════════════════════════════════════════════════════

// Review is append-only: created once, never edited.
type Review struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID string    `json:"product_id" gorm:"not null;index:idx_reviews_product"`
	Author    string    `json:"user_name" gorm:"column:user_name;not null"`
	Rating    int       `json:"rating" gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment   string    `json:"comment"`
	Helpful   int       `json:"helpful" gorm:"default:0;check:helpful >= 0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_reviews_product"`
}

// BeforeCreate hook - auto-generate UUID v7
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Review) TableName() string {
	return "reviews"
}

// AddReviewRequest is the body of a review submission.
type AddReviewRequest struct {
	UserName string `json:"user_name" binding:"required" example:"Sarah M."`
	Rating   int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Comment  string `json:"comment" example:"Absolutely love this piece!"`
}

// ValidateReview enforces the review form rules: an author and a 1–5 rating.
func ValidateReview(author string, rating int) error {
	if strings.TrimSpace(author) == "" {
		return fmt.Errorf("%w: author is required", ErrInvalidReview)
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating %d must be between 1 and 5", ErrInvalidReview, rating)
	}
	return nil
}
