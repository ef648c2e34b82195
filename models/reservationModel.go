package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	StatusLoaned   ReservationStatus = "loaned"
	StatusReserved ReservationStatus = "reserved"
	StatusReturned ReservationStatus = "returned"
)

// LoanPeriod is the fixed length of a loan: end_date = start_date + LoanPeriod.
const LoanPeriod = 14 * 24 * time.Hour

func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusLoaned, StatusReserved, StatusReturned:
		return true
	}
	return false
}

// CanTransitionTo rejects illegal status jumps. "returned" is terminal:
// a returned loan can never go back to loaned or reserved.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	transitions := map[ReservationStatus][]ReservationStatus{
		StatusLoaned:   {StatusReturned},
		StatusReserved: {StatusLoaned, StatusReturned},
		StatusReturned: {},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Reservation is the durable loan record produced at checkout. It keeps
// cart_id and quantity for traceability but is not owned by the cart:
// disabling or deleting the cart leaves the reservation untouched.
type Reservation struct {
	ID         string            `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     string            `json:"user_id" gorm:"type:uuid;not null;index"`
	BookID     string            `json:"book_id" gorm:"type:uuid;not null;index"`
	CartID     string            `json:"cart_id" gorm:"type:uuid"`
	Quantity   int               `json:"quantity" gorm:"default:1"`
	StartDate  time.Time         `json:"start_date"`
	EndDate    time.Time         `json:"end_date"`
	ReturnDate *time.Time        `json:"return_date"`
	Status     ReservationStatus `json:"status"`
}

func (Reservation) TableName() string { return "reservation" }

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ReservationDetail is the read-side shape for the by-user and by-book
// listings: the reservation joined with the book's display fields.
type ReservationDetail struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	Title            string            `json:"title"`
	Author           string            `json:"author"`
	ReleaseDate      datatypes.Date    `json:"release_date"`
	ShortDescription string            `json:"short_description"`
	Image            string            `json:"image"`
	Quantity         int               `json:"quantity"`
	Status           ReservationStatus `json:"status"`
	StartDate        time.Time         `json:"start_date"`
	EndDate          time.Time         `json:"end_date"`
	ReturnDate       *time.Time        `json:"return_date"`
}
