package services

import (
	"testing"

	"github.com/bookloop/bookloop-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection so every query sees the same in-memory database.
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
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
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

func seedBook(t *testing.T, db *gorm.DB, title string) models.Book {
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

func seedCart(t *testing.T, db *gorm.DB, userID string, enabled bool) models.Cart {
	t.Helper()

	cart := models.Cart{UserID: userID, Enabled: enabled}
	require.NoError(t, db.Create(&cart).Error)
	return cart
}
