package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/okothpaul/shopkart-api/controllers"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
	}
}
