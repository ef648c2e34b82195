package routes

import (
	"github.com/bookloop/bookloop-api/controllers"
	"github.com/bookloop/bookloop-api/middlewares"
	"github.com/gin-gonic/gin"
)

func BookRoutes(server *gin.Engine, books *controllers.BookController) {
	server.GET("/api/books", books.GetBooks)
	server.GET("/api/books/:bookId", books.GetBook)

	admin := server.Group("/api/books", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", books.CreateBook)
		admin.PATCH("/:bookId", books.UpdateBook)
		admin.DELETE("/:bookId", books.DeleteBook)
		admin.POST("/:bookId/cover", books.UploadBookCover)
		admin.POST("/:bookId/categories/:categoryId", books.AddBookCategory)
		admin.DELETE("/:bookId/categories/:categoryId", books.RemoveBookCategory)
	}
}
