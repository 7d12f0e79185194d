package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name string `json:"name" binding:"required" gorm:"size:50;uniqueIndex;not null"`

	// Cascade is deliberate: removing a category removes its products
	// (and transitively their cart and order rows). The delete endpoint
	// only allows this when CATEGORY_CASCADE_DELETE is enabled.
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
