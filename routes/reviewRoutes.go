package routes

import (
	"github.com/bookloop/bookloop-api/controllers"
	"github.com/gin-gonic/gin"
)

func ReviewRoutes(server *gin.Engine, reviews *controllers.ReviewController, replies *controllers.ReplyController) {
	server.POST("/api/reviews", reviews.AddReview)
	server.GET("/api/reviews/book/:bookId", reviews.GetReviewsByBook)
	server.GET("/api/reviews/user/:userId", reviews.GetReviewsByUser)
	server.GET("/api/reviews/:reviewId", reviews.GetReview)
	server.PATCH("/api/reviews/:reviewId", reviews.UpdateReview)
	server.DELETE("/api/reviews/:reviewId", reviews.DeleteReview)

	server.GET("/api/replies", replies.GetReplies)
	server.GET("/api/replies/review/:reviewId", replies.GetRepliesByReview)
	server.GET("/api/replies/user/:userId", replies.GetRepliesByUser)
	server.POST("/api/replies", replies.AddReply)
	server.PATCH("/api/replies/:reviewId", replies.UpdateReply)
	server.DELETE("/api/replies/:reviewId", replies.DeleteReply)
}
