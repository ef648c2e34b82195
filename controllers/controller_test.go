package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookloop/bookloop-api/controllers"
	"github.com/bookloop/bookloop-api/models"
	"github.com/bookloop/bookloop-api/routes"
	"github.com/bookloop/bookloop-api/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer wires the HTTP surface against an in-memory database so
// handler tests exercise the real binding, status and body behavior.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Reservation{},
		&models.Review{},
		&models.Reply{},
	))

	userSvc := services.NewUserService(db)
	bookSvc := services.NewBookService(db)
	categorySvc := services.NewCategoryService(db)
	cartSvc := services.NewCartService(db, userSvc)
	cartItemSvc := services.NewCartItemService(db)
	reservationSvc := services.NewReservationService(db, userSvc, bookSvc, nil)
	reviewSvc := services.NewReviewService(db)
	replySvc := services.NewReplyService(db)

	server := gin.New()
	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(userSvc))
	routes.UserRoutes(server, controllers.NewUserController(userSvc))
	routes.BookRoutes(server, controllers.NewBookController(bookSvc))
	routes.CategoryRoutes(server, controllers.NewCategoryController(categorySvc))
	routes.CartRoutes(server,
		controllers.NewCartController(cartSvc),
		controllers.NewCartItemController(cartItemSvc))
	routes.ReservationRoutes(server, controllers.NewReservationController(reservationSvc))
	routes.ReviewRoutes(server,
		controllers.NewReviewController(reviewSvc),
		controllers.NewReplyController(replySvc))

	return server, db
}

func performRequest(t *testing.T, server *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func seedTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email:     email,
		Firstname: "Test",
		Lastname:  "Reader",
		Password:  "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedTestBook(t *testing.T, db *gorm.DB, title string) models.Book {
	t.Helper()

	book := models.Book{
		Title:            title,
		Author:           "Some Author",
		Available:        3,
		ShortDescription: "short",
		LongDescription:  "long",
		Image:            title + ".jpg",
	}
	require.NoError(t, db.Create(&book).Error)
	return book
}

func seedTestCart(t *testing.T, db *gorm.DB, userID string, enabled bool) models.Cart {
	t.Helper()

	cart := models.Cart{UserID: userID, Enabled: enabled}
	require.NoError(t, db.Create(&cart).Error)
	return cart
}
