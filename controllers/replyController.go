package controllers

import (
	"net/http"

	"github.com/bookloop/bookloop-api/services"
	"github.com/gin-gonic/gin"
)

type ReplyController struct {
	replies services.ReplyService
}

func NewReplyController(replies services.ReplyService) *ReplyController {
	return &ReplyController{replies: replies}
}

func (c *ReplyController) GetReplies(ctx *gin.Context) {
	replies, err := c.replies.GetAllReplies()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, replies)
}

func (c *ReplyController) GetRepliesByReview(ctx *gin.Context) {
	replies, err := c.replies.GetRepliesByReviewID(ctx.Param("reviewId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, replies)
}

func (c *ReplyController) GetRepliesByUser(ctx *gin.Context) {
	replies, err := c.replies.GetRepliesByUserID(ctx.Param("userId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, replies)
}

func (c *ReplyController) AddReply(ctx *gin.Context) {
	var payload services.ReplyData
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	reply, err := c.replies.AddReply(payload)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, reply)
}

func (c *ReplyController) UpdateReply(ctx *gin.Context) {
	var payload services.ReplyUpdateData
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.replies.UpdateReply(ctx.Param("reviewId"), payload); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "reply updated successfully!"})
}

func (c *ReplyController) DeleteReply(ctx *gin.Context) {
	if err := c.replies.DeleteReply(ctx.Param("reviewId")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "reply deleted successfully!"})
}
