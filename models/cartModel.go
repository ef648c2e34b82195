package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Cart struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Enabled   bool      `json:"enabled" gorm:"not null"`
	CreatedOn time.Time `json:"created_on" gorm:"autoCreateTime"`

	Items []CartItem `json:"-" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

func (Cart) TableName() string { return "cart" }

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// A cart never holds two lines for the same book: repeated adds increment
// Quantity on the existing row and stamp UpdatedOn.
type CartItem struct {
	ID        string     `json:"id" gorm:"type:uuid;primaryKey"`
	CartID    string     `json:"cart_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_item_cart_book"`
	BookID    string     `json:"book_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_item_cart_book"`
	Quantity  int        `json:"quantity" gorm:"default:1"`
	CreatedOn time.Time  `json:"created_on" gorm:"autoCreateTime"`
	UpdatedOn *time.Time `json:"updated_on"`
}

func (CartItem) TableName() string { return "cart_item" }

func (ci *CartItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}
	return nil
}

// CartItemDetail is the read-side shape for listing a cart: the line item
// joined with the book's catalog fields for display.
type CartItemDetail struct {
	Title            string         `json:"title"`
	Author           string         `json:"author"`
	ReleaseDate      datatypes.Date `json:"release_date"`
	Available        int            `json:"available"`
	ShortDescription string         `json:"short_description"`
	LongDescription  string         `json:"long_description"`
	Image            string         `json:"image"`
	CartID           string         `json:"cart_id"`
	BookID           string         `json:"book_id"`
	Quantity         int            `json:"quantity"`
	CreatedOn        time.Time      `json:"created_on"`
	UpdatedOn        *time.Time     `json:"updated_on"`
}
