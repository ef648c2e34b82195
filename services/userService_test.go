package services

import (
	"testing"

	"github.com/bookloop/bookloop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	cartSvc := NewCartService(db, userSvc)

	signup := models.SignupData{
		Email:     "reader@example.com",
		Firstname: "Ursula",
		Lastname:  "Reader",
		Password:  "correct horse",
	}

	t.Run("all fields are required", func(t *testing.T) {
		_, err := userSvc.CreateUser(models.SignupData{Email: "reader@example.com"})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "All fields are required", validationErr.Message)
	})

	t.Run("short passwords are rejected", func(t *testing.T) {
		short := signup
		short.Password = "hunter2"
		_, err := userSvc.CreateUser(short)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Password must be at least 8 characters long", validationErr.Message)
	})

	t.Run("stores a bcrypt hash and provisions a cart", func(t *testing.T) {
		user, err := userSvc.CreateUser(signup)
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.False(t, user.IsAdmin)
		require.NoError(t,
			bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(signup.Password)))

		cart, err := cartSvc.GetActiveCart(user.ID)
		require.NoError(t, err)
		assert.True(t, cart.Enabled)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		_, err := userSvc.CreateUser(signup)
		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, "user already exists!", conflictErr.Message)
	})
}

func TestGetUser(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	user := seedUser(t, db, "reader@example.com")

	t.Run("by id", func(t *testing.T) {
		got, err := userSvc.GetUserByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		_, err := userSvc.GetUserByID("b7f9a3f8-0000-0000-0000-000000000000")
		var notFoundErr *NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "User not found", notFoundErr.Message)
	})

	t.Run("missing email is not found", func(t *testing.T) {
		_, err := userSvc.GetUserByEmail("nobody@example.com")
		var notFoundErr *NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "User does not exist!", notFoundErr.Message)
	})
}

func TestUpdateUser(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	user := seedUser(t, db, "reader@example.com")

	firstname := "Updated"
	isAdmin := true
	require.NoError(t, userSvc.UpdateUser(user.ID, UserUpdateData{
		Firstname: &firstname,
		IsAdmin:   &isAdmin,
	}))

	got, err := userSvc.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.Firstname)
	assert.True(t, got.IsAdmin)
	assert.Equal(t, user.Lastname, got.Lastname)
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	userSvc := NewUserService(db)
	cartSvc := NewCartService(db, userSvc)
	user := seedUser(t, db, "reader@example.com")
	seedCart(t, db, user.ID, true)

	require.NoError(t, userSvc.DeleteUser(user.ID))

	_, err := userSvc.GetUserByID(user.ID)
	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	carts, err := cartSvc.GetCartsByUserID(user.ID)
	require.NoError(t, err)
	assert.Empty(t, carts)

	exists, err := userSvc.UserExists(user.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
