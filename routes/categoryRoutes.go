package routes

import (
	"github.com/bookloop/bookloop-api/controllers"
	"github.com/bookloop/bookloop-api/middlewares"
	"github.com/gin-gonic/gin"
)

func CategoryRoutes(server *gin.Engine, categories *controllers.CategoryController) {
	server.GET("/api/categories", categories.GetCategories)
	server.GET("/api/categories/:categoryId", categories.GetCategory)

	admin := server.Group("/api/categories", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", categories.CreateCategory)
		admin.PATCH("/:categoryId", categories.UpdateCategory)
		admin.DELETE("/:categoryId", categories.DeleteCategory)
	}
}
