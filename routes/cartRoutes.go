package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/okothpaul/shopkart-api/controllers"
	"github.com/okothpaul/shopkart-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/", middlewares.RequireAuth())
	{
		cart.POST("/cart", controllers.AddToCart)
		cart.GET("/cart", controllers.GetCart)
		cart.PUT("/cart/:cartId", controllers.UpdateCartItem)
		cart.DELETE("/cart/:cartId", controllers.RemoveFromCart)
		cart.GET("/api/cart-count", controllers.GetCartCount)
	}
}
