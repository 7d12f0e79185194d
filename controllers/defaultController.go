package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to ShopKart API ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create user account
- POST "/auth/login" - Access user account

CATALOG
- GET "/product" - Get all products (?search= and ?category= filters)
- GET "/product/{id}" - Get product by ID
- GET "/category" - Get all categories
- POST "/product" - Create new product (admin)
- POST "/product-images" - Upload product image (admin)
- POST "/category" - Create category (admin)
- DELETE "/category/{id}" - Delete category (admin)

CART
- POST "/cart" - Add a product to the cart
- GET "/cart" - Get the cart with totals
- PUT "/cart/{cartId}" - Set line item quantity (0 removes it)
- DELETE "/cart/{cartId}" - Remove a line item
- GET "/api/cart-count" - Cart badge count

ORDERS
- POST "/checkout" - Convert the cart into orders
- GET "/orders" - Get your orders
- GET "/orders/{orderId}" - Get order by ID`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
