package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/okothpaul/shopkart-api/controllers"
	"github.com/okothpaul/shopkart-api/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/:id", controllers.GetProduct)
	server.GET("/category", controllers.GetCategories)

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/product", controllers.CreateProduct)
		admin.POST("/product-images", controllers.UploadProductImage)
		admin.POST("/category", controllers.CreateCategory)
		admin.DELETE("/category/:id", controllers.DeleteCategory)
	}
}
