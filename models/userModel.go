package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Email    string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Password string `json:"-" gorm:"size:120;not null"`
	Role     string `json:"role" gorm:"size:20;default:'user'"`

	// Deleting a user takes their cart rows and order history with them.
	CartItems []CartItem `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders    []Order    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type SignupData struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
