package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/bookloop/bookloop-api/services"
	"github.com/gin-gonic/gin"
)

const msgInvalidInput = "Invalid input"

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"error": message})
}

// handleServiceError maps the service error kinds onto HTTP statuses.
// Store errors are logged here and surface as a generic 500.
func handleServiceError(ctx *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		sendErrorResponse(ctx, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		sendErrorResponse(ctx, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &conflictErr):
		sendErrorResponse(ctx, http.StatusBadRequest, conflictErr.Message)
	default:
		log.Println("Service error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}
