package controllers

import (
	"net/http"

	"github.com/bookloop/bookloop-api/services"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviews services.ReviewService
}

func NewReviewController(reviews services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

// AddReview creates a review or, when the user already reviewed the book,
// replaces the old one. A fresh review responds 201, a replacement 200.
func (c *ReviewController) AddReview(ctx *gin.Context) {
	var payload services.ReviewData
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	review, created, err := c.reviews.AddReview(payload)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	sendJSONResponse(ctx, status, review)
}

func (c *ReviewController) GetReview(ctx *gin.Context) {
	review, err := c.reviews.GetReviewByID(ctx.Param("reviewId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, review)
}

func (c *ReviewController) GetReviewsByBook(ctx *gin.Context) {
	reviews, err := c.reviews.GetReviewsByBookID(ctx.Param("bookId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, reviews)
}

func (c *ReviewController) GetReviewsByUser(ctx *gin.Context) {
	reviews, err := c.reviews.GetReviewsByUserID(ctx.Param("userId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, reviews)
}

func (c *ReviewController) UpdateReview(ctx *gin.Context) {
	var payload services.ReviewUpdateData
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.reviews.UpdateReview(ctx.Param("reviewId"), payload); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "review updated successfully!"})
}

func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	if err := c.reviews.DeleteReview(ctx.Param("reviewId")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "review deleted successfully!"})
}
