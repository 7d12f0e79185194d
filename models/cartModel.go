package models

import "time"

// CartItem is one line item in a user's cart. The composite unique index
// guarantees at most one row per (user, product); concurrent adds for the
// same pair fold into a quantity increment instead of a second row.
// No soft delete here: removed rows must free the unique slot immediately.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_user_product"`
	ProductID uint      `json:"productId" gorm:"not null;uniqueIndex:idx_user_product"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
