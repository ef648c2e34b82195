package controllers

import (
	"net/http"

	"github.com/bookloop/bookloop-api/services"
	"github.com/gin-gonic/gin"
)

type CartItemController struct {
	items services.CartItemService
}

func NewCartItemController(items services.CartItemService) *CartItemController {
	return &CartItemController{items: items}
}

// AddCartItem creates a line for (cart, book) or bumps the quantity on the
// existing one. A new line responds 201, a merge responds 200 with the
// merged line.
func (c *CartItemController) AddCartItem(ctx *gin.Context) {
	var payload struct {
		CartID string `json:"cart_id"`
		BookID string `json:"book_id"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, created, err := c.items.AddCartItem(payload.CartID, payload.BookID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	if created {
		sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Item added to cart!"})
		return
	}
	sendJSONResponse(ctx, http.StatusOK, item)
}

func (c *CartItemController) GetCartItems(ctx *gin.Context) {
	items, err := c.items.GetCartItems(ctx.Param("cartId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, items)
}

func (c *CartItemController) UpdateCartItem(ctx *gin.Context) {
	var payload services.CartItemUpdateData
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	err := c.items.UpdateCartItem(ctx.Param("cartId"), ctx.Param("bookId"), payload)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "cart item updated successfully!"})
}

func (c *CartItemController) DeleteCartItem(ctx *gin.Context) {
	err := c.items.DeleteCartItem(ctx.Param("cartId"), ctx.Param("bookId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "cart item deleted successfully!"})
}
