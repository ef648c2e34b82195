package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	BookID    string    `json:"book_id" gorm:"type:uuid;not null;index"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedOn time.Time `json:"created_on" gorm:"autoCreateTime"`

	Replies []Reply `json:"-" gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
}

func (Review) TableName() string { return "review" }

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

type Reply struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;index"`
	ReviewID  string    `json:"review_id" gorm:"type:uuid;not null;index"`
	Comment   string    `json:"comment"`
	CreatedOn time.Time `json:"created_on" gorm:"autoCreateTime"`
}

func (Reply) TableName() string { return "reply" }

func (r *Reply) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
