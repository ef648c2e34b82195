package controllers

import (
	"net/http"

	"github.com/bookloop/bookloop-api/services"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	categories services.CategoryService
}

func NewCategoryController(categories services.CategoryService) *CategoryController {
	return &CategoryController{categories: categories}
}

func (c *CategoryController) GetCategories(ctx *gin.Context) {
	categories, err := c.categories.GetAllCategories()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, categories)
}

func (c *CategoryController) GetCategory(ctx *gin.Context) {
	category, err := c.categories.GetCategoryByID(ctx.Param("categoryId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, category)
}

func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	category, err := c.categories.CreateCategory(payload.Name)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "category created successfully!",
		"category": category,
	})
}

func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	var payload services.CategoryUpdateData
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.categories.UpdateCategory(ctx.Param("categoryId"), payload); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "category updated successfully!"})
}

func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	if err := c.categories.DeleteCategory(ctx.Param("categoryId")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "category deleted successfully!"})
}
