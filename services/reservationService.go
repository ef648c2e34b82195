package services

import (
	"errors"
	"time"

	"github.com/bookloop/bookloop-api/models"
	"gorm.io/gorm"
)

// BookVerifier is the slice of the catalog collaborator the reservation
// engine needs: an existence check.
type BookVerifier interface {
	BookExists(bookID string) (bool, error)
}

// LoanNotifier is invoked best-effort after a loan is created. Failures
// are the notifier's problem; the reservation is already durable.
type LoanNotifier func(userID string, reservation models.Reservation)

type ReservationData struct {
	UserID   string `json:"user_id"`
	BookID   string `json:"book_id"`
	CartID   string `json:"cart_id"`
	Quantity *int   `json:"quantity"`
}

type ReservationService interface {
	CreateReservation(data ReservationData) (models.Reservation, error)
	GetReservationByID(reservationID string) (models.Reservation, error)
	GetReservationsByUserID(userID string) ([]models.ReservationDetail, error)
	GetReservationsByBookID(bookID string) ([]models.ReservationDetail, error)
	UpdateReservationStatus(reservationID string, status string) error
}

type reservationService struct {
	db     *gorm.DB
	users  UserVerifier
	books  BookVerifier
	notify LoanNotifier
}

func NewReservationService(db *gorm.DB, users UserVerifier, books BookVerifier, notify LoanNotifier) ReservationService {
	return &reservationService{db: db, users: users, books: books, notify: notify}
}

// CreateReservation converts a cart line into a durable loan record with a
// fixed 14-day window. The record references its originating cart for
// traceability but outlives it.
func (s *reservationService) CreateReservation(data ReservationData) (models.Reservation, error) {
	if data.UserID == "" || data.BookID == "" {
		return models.Reservation{}, NewValidationError("user_id and book_id are required!")
	}
	if data.CartID == "" {
		return models.Reservation{}, NewValidationError("cart id is required!")
	}

	quantity := 1
	if data.Quantity != nil {
		if *data.Quantity < 1 {
			return models.Reservation{}, NewValidationError("quantity must be at least 1!")
		}
		quantity = *data.Quantity
	}

	userExists, err := s.users.UserExists(data.UserID)
	if err != nil {
		return models.Reservation{}, err
	}
	if !userExists {
		return models.Reservation{}, NewNotFoundError("User not found")
	}

	bookExists, err := s.books.BookExists(data.BookID)
	if err != nil {
		return models.Reservation{}, err
	}
	if !bookExists {
		return models.Reservation{}, NewNotFoundError("Book not found!")
	}

	now := time.Now()
	reservation := models.Reservation{
		UserID:    data.UserID,
		BookID:    data.BookID,
		CartID:    data.CartID,
		Quantity:  quantity,
		StartDate: now,
		EndDate:   now.Add(models.LoanPeriod),
		Status:    models.StatusLoaned,
	}

	// TODO: decrement book.available here (and re-increment on return) once
	// the inventory rule is confirmed; loans currently do not touch stock.
	if err := s.db.Create(&reservation).Error; err != nil {
		return models.Reservation{}, NewStoreError("create reservation", err)
	}

	if s.notify != nil {
		s.notify(reservation.UserID, reservation)
	}
	return reservation, nil
}

func (s *reservationService) GetReservationByID(reservationID string) (models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.Where("id = ?", reservationID).First(&reservation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Reservation{}, NewNotFoundError("reservation not found!")
	}
	if err != nil {
		return models.Reservation{}, NewStoreError("fetch reservation", err)
	}
	return reservation, nil
}

func (s *reservationService) GetReservationsByUserID(userID string) ([]models.ReservationDetail, error) {
	var details []models.ReservationDetail
	err := s.reservationDetailQuery().
		Where("reservation.user_id = ?", userID).
		Scan(&details).Error
	if err != nil {
		return nil, NewStoreError("fetch reservations by user", err)
	}
	return details, nil
}

// GetReservationsByBookID lists only the book's outstanding loans. Callers
// wanting returned loans as well must go through the by-user listing.
func (s *reservationService) GetReservationsByBookID(bookID string) ([]models.ReservationDetail, error) {
	var details []models.ReservationDetail
	err := s.reservationDetailQuery().
		Where("reservation.book_id = ? AND reservation.status = ?", bookID, models.StatusLoaned).
		Scan(&details).Error
	if err != nil {
		return nil, NewStoreError("fetch reservations by book", err)
	}
	return details, nil
}

// UpdateReservationStatus moves a reservation through its lifecycle.
// Transition to returned stamps return_date; returned is terminal.
func (s *reservationService) UpdateReservationStatus(reservationID string, status string) error {
	if status == "" {
		return NewValidationError("status is required!")
	}

	target := models.ReservationStatus(status)
	if !target.Valid() {
		return NewValidationError("invalid reservation status!")
	}

	reservation, err := s.GetReservationByID(reservationID)
	if err != nil {
		return err
	}

	if !reservation.Status.CanTransitionTo(target) {
		return NewValidationError("reservation cannot change from " +
			string(reservation.Status) + " to " + string(target) + "!")
	}

	updates := map[string]any{"status": target}
	if target == models.StatusReturned {
		updates["return_date"] = time.Now()
	}

	if err := s.db.Model(&reservation).Updates(updates).Error; err != nil {
		return NewStoreError("update reservation", err)
	}
	return nil
}

func (s *reservationService) reservationDetailQuery() *gorm.DB {
	return s.db.Table("reservation").
		Select(`reservation.id, reservation.user_id, book.title, book.author,
			book.release_date, book.short_description, book.image,
			reservation.quantity, reservation.status, reservation.start_date,
			reservation.end_date, reservation.return_date`).
		Joins("INNER JOIN book ON reservation.book_id = book.id").
		Order("reservation.start_date desc")
}
