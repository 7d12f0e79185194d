package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these to
// HTTP statuses; none of them are fatal to the process.
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrCategoryNotEmpty   = errors.New("category still has products")
	ErrCategoryNameTaken  = errors.New("category name already exists")
	ErrNegativePrice      = errors.New("price must not be negative")
)
