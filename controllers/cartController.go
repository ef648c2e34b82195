package controllers

import (
	"net/http"

	"github.com/bookloop/bookloop-api/services"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts services.CartService
}

func NewCartController(carts services.CartService) *CartController {
	return &CartController{carts: carts}
}

// CreateCart opens a new cart for the user in the request body. A user with
// an active cart gets a conflict, not a second cart.
func (c *CartController) CreateCart(ctx *gin.Context) {
	var payload struct {
		UserID string `json:"user_id"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "userId is required!")
		return
	}

	cart, err := c.carts.CreateCart(payload.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, cart)
}

func (c *CartController) GetCarts(ctx *gin.Context) {
	carts, err := c.carts.GetCartsByUserID(ctx.Param("userId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, carts)
}

func (c *CartController) GetActiveCart(ctx *gin.Context) {
	cart, err := c.carts.GetActiveCart(ctx.Param("userId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) UpdateCart(ctx *gin.Context) {
	var payload struct {
		Enabled *bool `json:"enabled"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "enabled is required!")
		return
	}

	if err := c.carts.UpdateCart(ctx.Param("userId"), payload.Enabled); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "cart updated successfully!"})
}

func (c *CartController) DeleteCart(ctx *gin.Context) {
	if err := c.carts.DeleteCart(ctx.Param("userId")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "deleted cart successfully!"})
}
