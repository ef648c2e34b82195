package initializers

import (
	"log"

	"github.com/bookloop/bookloop-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Book{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.Reservation{},
		&models.Review{},
		&models.Reply{},
	)
	if err != nil {
		log.Fatal("Failed to sync database: ", err)
	}
	log.Println("Database synced successfully.")
}
