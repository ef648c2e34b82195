package routes

import (
	"github.com/bookloop/bookloop-api/controllers"
	"github.com/gin-gonic/gin"
)

func ReservationRoutes(server *gin.Engine, reservations *controllers.ReservationController) {
	server.POST("/api/reservations", reservations.CreateReservation)
	server.GET("/api/reservations/user/:userId", reservations.GetReservationsByUser)
	server.GET("/api/reservations/book/:bookId", reservations.GetReservationsByBook)
	server.GET("/api/reservations/:reservationId", reservations.GetReservation)
	server.PATCH("/api/reservations/:reservationId", reservations.UpdateReservation)
}
