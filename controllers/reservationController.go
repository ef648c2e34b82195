package controllers

import (
	"net/http"

	"github.com/bookloop/bookloop-api/services"
	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	reservations services.ReservationService
}

func NewReservationController(reservations services.ReservationService) *ReservationController {
	return &ReservationController{reservations: reservations}
}

// CreateReservation turns a cart line into a loan with a fixed due date.
func (c *ReservationController) CreateReservation(ctx *gin.Context) {
	var payload services.ReservationData
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	reservation, err := c.reservations.CreateReservation(payload)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, reservation)
}

func (c *ReservationController) GetReservation(ctx *gin.Context) {
	reservation, err := c.reservations.GetReservationByID(ctx.Param("reservationId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, reservation)
}

func (c *ReservationController) GetReservationsByUser(ctx *gin.Context) {
	reservations, err := c.reservations.GetReservationsByUserID(ctx.Param("userId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, reservations)
}

// GetReservationsByBook lists the book's outstanding loans only.
func (c *ReservationController) GetReservationsByBook(ctx *gin.Context) {
	reservations, err := c.reservations.GetReservationsByBookID(ctx.Param("bookId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, reservations)
}

func (c *ReservationController) UpdateReservation(ctx *gin.Context) {
	var payload struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "status is required!")
		return
	}

	err := c.reservations.UpdateReservationStatus(ctx.Param("reservationId"), payload.Status)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "reservation updated successfully!"})
}
