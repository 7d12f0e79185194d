package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
)

// Order rows are written once at checkout and never mutated afterwards.
// TotalPrice is the price at the moment of purchase; later product price
// changes must not affect it.
type Order struct {
	gorm.Model
	Reference       string          `json:"reference" gorm:"size:64;uniqueIndex"`
	UserID          uint            `json:"userId" gorm:"not null;index"`
	ProductID       uint            `json:"productId" gorm:"not null"`
	Quantity        int             `json:"quantity" gorm:"not null"`
	TotalPrice      decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2);not null"`
	Status          string          `json:"status" gorm:"size:20;default:'pending'"`
	ShippingAddress string          `json:"shippingAddress" gorm:"type:text"`
	PaymentMethod   string          `json:"paymentMethod" gorm:"size:50"`
	Product         Product         `json:"product"`
}
