package services

import (
	"testing"
	"time"

	"github.com/bookloop/bookloop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservation(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	bookSvc := NewBookService(db)

	var notified []models.Reservation
	notifier := func(userID string, reservation models.Reservation) {
		notified = append(notified, reservation)
	}
	resSvc := NewReservationService(db, userSvc, bookSvc, notifier)

	user := seedUser(t, db, "reader@example.com")
	book := seedBook(t, db, "The Tombs of Atuan")
	cart := seedCart(t, db, user.ID, true)

	t.Run("user and book ids are required", func(t *testing.T) {
		_, err := resSvc.CreateReservation(ReservationData{CartID: cart.ID})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "user_id and book_id are required!", validationErr.Message)
	})

	t.Run("cart id is required", func(t *testing.T) {
		_, err := resSvc.CreateReservation(ReservationData{UserID: user.ID, BookID: book.ID})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "cart id is required!", validationErr.Message)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		_, err := resSvc.CreateReservation(ReservationData{
			UserID: "b7f9a3f8-0000-0000-0000-000000000000",
			BookID: book.ID,
			CartID: cart.ID,
		})
		var notFoundErr *NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "User not found", notFoundErr.Message)
	})

	t.Run("unknown book is not found", func(t *testing.T) {
		_, err := resSvc.CreateReservation(ReservationData{
			UserID: user.ID,
			BookID: "b7f9a3f8-0000-0000-0000-000000000000",
			CartID: cart.ID,
		})
		var notFoundErr *NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "Book not found!", notFoundErr.Message)
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		quantity := 0
		_, err := resSvc.CreateReservation(ReservationData{
			UserID:   user.ID,
			BookID:   book.ID,
			CartID:   cart.ID,
			Quantity: &quantity,
		})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "quantity must be at least 1!", validationErr.Message)
	})

	t.Run("creates a loan with a fourteen day window", func(t *testing.T) {
		reservation, err := resSvc.CreateReservation(ReservationData{
			UserID: user.ID,
			BookID: book.ID,
			CartID: cart.ID,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, reservation.ID)
		assert.Equal(t, 1, reservation.Quantity)
		assert.Equal(t, models.StatusLoaned, reservation.Status)
		assert.Nil(t, reservation.ReturnDate)
		assert.WithinDuration(t,
			reservation.StartDate.Add(models.LoanPeriod), reservation.EndDate, time.Second)

		require.Len(t, notified, 1)
		assert.Equal(t, reservation.ID, notified[0].ID)
	})
}

func TestGetReservations(t *testing.T) {
	db := newTestDB(t)
	resSvc := NewReservationService(db, NewUserService(db), NewBookService(db), nil)

	user := seedUser(t, db, "reader@example.com")
	book := seedBook(t, db, "Tehanu")
	cart := seedCart(t, db, user.ID, true)

	reservation, err := resSvc.CreateReservation(ReservationData{
		UserID: user.ID, BookID: book.ID, CartID: cart.ID,
	})
	require.NoError(t, err)

	t.Run("by id", func(t *testing.T) {
		got, err := resSvc.GetReservationByID(reservation.ID)
		require.NoError(t, err)
		assert.Equal(t, reservation.ID, got.ID)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		_, err := resSvc.GetReservationByID("b7f9a3f8-0000-0000-0000-000000000000")
		var notFoundErr *NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "reservation not found!", notFoundErr.Message)
	})

	t.Run("by user includes book fields", func(t *testing.T) {
		details, err := resSvc.GetReservationsByUserID(user.ID)
		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, "Tehanu", details[0].Title)
		assert.Equal(t, models.StatusLoaned, details[0].Status)
	})

	t.Run("by book lists outstanding loans only", func(t *testing.T) {
		details, err := resSvc.GetReservationsByBookID(book.ID)
		require.NoError(t, err)
		require.Len(t, details, 1)

		require.NoError(t, resSvc.UpdateReservationStatus(reservation.ID, "returned"))

		details, err = resSvc.GetReservationsByBookID(book.ID)
		require.NoError(t, err)
		assert.Empty(t, details)
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	db := newTestDB(t)
	resSvc := NewReservationService(db, NewUserService(db), NewBookService(db), nil)

	user := seedUser(t, db, "reader@example.com")
	book := seedBook(t, db, "The Farthest Shore")
	cart := seedCart(t, db, user.ID, true)

	reservation, err := resSvc.CreateReservation(ReservationData{
		UserID: user.ID, BookID: book.ID, CartID: cart.ID,
	})
	require.NoError(t, err)

	t.Run("status is required", func(t *testing.T) {
		err := resSvc.UpdateReservationStatus(reservation.ID, "")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "status is required!", validationErr.Message)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		err := resSvc.UpdateReservationStatus(reservation.ID, "lost")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "invalid reservation status!", validationErr.Message)
	})

	t.Run("illegal transition is rejected", func(t *testing.T) {
		err := resSvc.UpdateReservationStatus(reservation.ID, "reserved")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "reservation cannot change from loaned to reserved!", validationErr.Message)
	})

	t.Run("returning stamps the return date", func(t *testing.T) {
		require.NoError(t, resSvc.UpdateReservationStatus(reservation.ID, "returned"))

		got, err := resSvc.GetReservationByID(reservation.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusReturned, got.Status)
		require.NotNil(t, got.ReturnDate)
		assert.WithinDuration(t, time.Now(), *got.ReturnDate, 5*time.Second)
	})

	t.Run("returned is terminal", func(t *testing.T) {
		err := resSvc.UpdateReservationStatus(reservation.ID, "loaned")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "reservation cannot change from returned to loaned!", validationErr.Message)
	})
}
