package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Book struct {
	ID               string         `json:"id" gorm:"type:uuid;primaryKey"`
	Title            string         `json:"title" gorm:"uniqueIndex:idx_book_title_image"`
	Author           string         `json:"author"`
	ReleaseDate      datatypes.Date `json:"release_date"`
	Available        int            `json:"available"`
	ShortDescription string         `json:"short_description"`
	LongDescription  string         `json:"long_description"`
	Image            string         `json:"image" gorm:"uniqueIndex:idx_book_title_image"`
	CreatedOn        time.Time      `json:"created_on" gorm:"autoCreateTime"`

	Categories []Category `json:"categories,omitempty" gorm:"many2many:book_category;constraint:OnDelete:CASCADE"`
}

func (Book) TableName() string { return "book" }

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
