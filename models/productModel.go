package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string          `json:"name" binding:"required" gorm:"size:100;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description" gorm:"type:text"`
	Image       string          `json:"image" gorm:"size:200;default:'/static/images/placeholder.jpg'"`
	CategoryID  uint            `json:"categoryId" binding:"required" gorm:"not null;index"`
	Stock       int             `json:"stock" gorm:"default:50"`
	Attributes  datatypes.JSON  `json:"attributes,omitempty"`

	CartItems []CartItem `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Orders    []Order    `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
