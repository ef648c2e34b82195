package main

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bookloop/bookloop-api/controllers"
	"github.com/bookloop/bookloop-api/initializers"
	"github.com/bookloop/bookloop-api/models"
	"github.com/bookloop/bookloop-api/routes"
	"github.com/bookloop/bookloop-api/services"
	"github.com/bookloop/bookloop-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func loanConfirmationNotifier(userService services.UserService) services.LoanNotifier {
	return func(userID string, reservation models.Reservation) {
		user, err := userService.GetUserByID(userID)
		if err != nil {
			log.Println("Loan email skipped, user lookup failed:", err)
			return
		}

		emailData := utils.EmailData{
			Name:    user.Firstname,
			Message: "Your reservation is confirmed. Here are the details of your loan:",
			Details: []string{
				"Reservation: " + reservation.ID,
				"Copies: " + strconv.Itoa(reservation.Quantity),
				"Due back: " + reservation.EndDate.Format("January 2, 2006"),
			},
			LogoURL: os.Getenv("LOGO_URL"),
		}

		templatePath := filepath.Join("templates", "loan_confirmation.html")
		if err := utils.SendEmail(user.Email, "BookLoop Loan Confirmation", emailData, templatePath); err != nil {
			log.Println("Error sending loan confirmation email:", err)
		} else {
			log.Println("Loan confirmation email sent successfully to:", user.Email)
		}
	}
}

func main() {
	initializers.LoadEnv()
	db := initializers.ConnectToDB()
	initializers.SyncDatabase(db)

	userService := services.NewUserService(db)
	bookService := services.NewBookService(db)
	categoryService := services.NewCategoryService(db)
	cartService := services.NewCartService(db, userService)
	cartItemService := services.NewCartItemService(db)
	reservationService := services.NewReservationService(
		db, userService, bookService, loanConfirmationNotifier(userService))
	reviewService := services.NewReviewService(db)
	replyService := services.NewReplyService(db)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://www.bookloop.live"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(userService))
	routes.UserRoutes(server, controllers.NewUserController(userService))
	routes.BookRoutes(server, controllers.NewBookController(bookService))
	routes.CategoryRoutes(server, controllers.NewCategoryController(categoryService))
	routes.CartRoutes(server,
		controllers.NewCartController(cartService),
		controllers.NewCartItemController(cartItemService))
	routes.ReservationRoutes(server, controllers.NewReservationController(reservationService))
	routes.ReviewRoutes(server,
		controllers.NewReviewController(reviewService),
		controllers.NewReplyController(replyService))

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	if err := server.Run(":" + port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
