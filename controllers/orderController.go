package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/okothpaul/shopkart-api/initializers"
	"github.com/okothpaul/shopkart-api/services"
	"github.com/okothpaul/shopkart-api/utils"
)

// Checkout converts the authenticated user's cart into orders. Address and
// payment method are recorded as given; an absent field stays empty.
func Checkout(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var checkoutData struct {
		Address       string `json:"address" form:"address"`
		PaymentMethod string `json:"payment_method" form:"payment_method"`
	}
	if err := ctx.ShouldBind(&checkoutData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	orders, err := services.Checkout(initializers.DB, userID, checkoutData.Address, checkoutData.PaymentMethod)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}

	if user, err := services.GetUser(initializers.DB, userID); err == nil {
		if err := utils.SendOrderConfirmationEmail(user, orders); err != nil {
			log.Println("Error sending order confirmation email:", err)
		}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order placed successfully! Thank you for shopping with us.",
		"orders":  orders,
	})
}

func GetOrders(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	orders, err := services.ListOrders(initializers.DB, userID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func GetOrderById(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := services.GetOrder(initializers.DB, uint(orderID), userID)
	if err != nil {
		sendServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}
