package routes

import (
	"github.com/bookloop/bookloop-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, carts *controllers.CartController, items *controllers.CartItemController) {
	server.POST("/api/carts", carts.CreateCart)
	server.GET("/api/carts/active/:userId", carts.GetActiveCart)
	server.GET("/api/carts/:userId", carts.GetCarts)
	server.PATCH("/api/carts/:userId", carts.UpdateCart)
	server.DELETE("/api/carts/:userId", carts.DeleteCart)

	server.POST("/api/cart-items", items.AddCartItem)
	server.GET("/api/cart-items/:cartId", items.GetCartItems)
	server.PATCH("/api/cart-items/:cartId/:bookId", items.UpdateCartItem)
	server.DELETE("/api/cart-items/:cartId/:bookId", items.DeleteCartItem)
}
