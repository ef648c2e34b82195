package routes

import (
	"github.com/bookloop/bookloop-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	group := server.Group("/api/auth")
	{
		group.POST("/signup", auth.Signup)
		group.POST("/login", auth.Login)
	}
}
