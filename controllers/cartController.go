package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/okothpaul/shopkart-api/initializers"
	"github.com/okothpaul/shopkart-api/services"
)

func currentUserID(ctx *gin.Context) (uint, bool) {
	userID, exists := ctx.Get("user_id")
	if !exists {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return 0, false
	}
	return userID.(uint), true
}

func AddToCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var input struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, err := services.AddCartItem(initializers.DB, userID, input.ProductID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": item.Product.Name + " added to cart",
		"item":    item,
	})
}

func UpdateCartItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	cartID, err := strconv.Atoi(ctx.Param("cartId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse cartId")
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, err := services.UpdateCartQuantity(initializers.DB, uint(cartID), userID, input.Quantity)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	if item == nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Cart updated successfully",
		"item":    item,
	})
}

func RemoveFromCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	cartID, err := strconv.Atoi(ctx.Param("cartId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse cartId")
		return
	}

	// Removing a row that is missing or owned by someone else is a no-op.
	if err := services.RemoveCartItem(initializers.DB, uint(cartID), userID); err != nil {
		sendServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func GetCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	items, err := services.ListCartItems(initializers.DB, userID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	total, err := services.CartTotalAmount(initializers.DB, userID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items":       items,
		"totalAmount": total,
		"count":       len(items),
	})
}

// GetCartCount backs the cart badge in the UI.
func GetCartCount(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	count, err := services.CountCartItems(initializers.DB, userID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"count": count})
}
