package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/okothpaul/shopkart-api/controllers"
	"github.com/okothpaul/shopkart-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	orders := server.Group("/", middlewares.RequireAuth())
	{
		orders.POST("/checkout", controllers.Checkout)
		orders.GET("/orders", controllers.GetOrders)
		orders.GET("/orders/:orderId", controllers.GetOrderById)
	}
}
