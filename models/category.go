package models

import (
	"gorm.io/datatypes"
)

// Category is an entry of the category registry. ID is the URL slug
// ("casual-bottoms"), Name the display name ("Casual Bottoms").
type Category struct {
	ID            string                      `json:"id" gorm:"primaryKey" yaml:"id" example:"dresses"`
	Name          string                      `json:"name" gorm:"not null;uniqueIndex" yaml:"name" example:"Dresses"`
	Subcategories datatypes.JSONSlice[string] `json:"subcategories" gorm:"type:jsonb;not null;default:'[]'" yaml:"subcategories" swaggertype:"array,string"`
	Image         string                      `json:"image" yaml:"image"`
	Position      int                         `json:"-" gorm:"default:0" yaml:"-"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// CategoryWithProducts extends Category with product count
type CategoryWithProducts struct {
	Category
	ProductCount int `json:"product_count"`
}
