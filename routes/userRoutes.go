package routes

import (
	"github.com/bookloop/bookloop-api/controllers"
	"github.com/bookloop/bookloop-api/middlewares"
	"github.com/gin-gonic/gin"
)

func UserRoutes(server *gin.Engine, users *controllers.UserController) {
	group := server.Group("/api/users", middlewares.RequireAuth())
	{
		group.GET("", users.GetUsers)
		group.GET("/:userId", users.GetUser)
		group.POST("", middlewares.RequireAdmin(), users.CreateUser)
		group.PATCH("/:userId", users.UpdateUser)
		group.DELETE("/:userId", users.DeleteUser)
	}
}
