package services

import (
	"errors"

	"github.com/bookloop/bookloop-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

const minPasswordLength = 8

type UserUpdateData struct {
	Email     *string `json:"email"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	IsAdmin   *bool   `json:"is_admin"`
}

type UserService interface {
	GetAllUsers() ([]models.User, error)
	GetUserByID(userID string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	CreateUser(data models.SignupData) (models.User, error)
	UpdateUser(userID string, payload UserUpdateData) error
	DeleteUser(userID string) error

	// UserExists implements the verifier capability consumed by the cart
	// and reservation engines.
	UserExists(userID string) (bool, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_on desc").Find(&users).Error; err != nil {
		return nil, NewStoreError("fetch users", err)
	}
	return users, nil
}

func (s *userService) GetUserByID(userID string) (models.User, error) {
	var user models.User
	err := s.db.Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, NewNotFoundError("User not found")
	}
	if err != nil {
		return models.User{}, NewStoreError("fetch user", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, NewNotFoundError("User does not exist!")
	}
	if err != nil {
		return models.User{}, NewStoreError("fetch user by email", err)
	}
	return user, nil
}

// CreateUser registers a user and provisions their first cart in the same
// transaction, so a fresh account always has an active cart to add to.
func (s *userService) CreateUser(data models.SignupData) (models.User, error) {
	if data.Email == "" || data.Firstname == "" || data.Lastname == "" || data.Password == "" {
		return models.User{}, NewValidationError("All fields are required")
	}
	if len(data.Password) < minPasswordLength {
		return models.User{}, NewValidationError("Password must be at least 8 characters long")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", data.Email).Count(&count).Error; err != nil {
		return models.User{}, NewStoreError("check email", err)
	}
	if count > 0 {
		return models.User{}, NewConflictError("user already exists!")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcryptCost)
	if err != nil {
		return models.User{}, NewStoreError("hash password", err)
	}

	user := models.User{
		Email:     data.Email,
		Firstname: data.Firstname,
		Lastname:  data.Lastname,
		Password:  string(hash),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Cart{UserID: user.ID, Enabled: true}).Error
	})
	if err != nil {
		return models.User{}, NewStoreError("create user", err)
	}
	return user, nil
}

func (s *userService) UpdateUser(userID string, payload UserUpdateData) error {
	if _, err := s.GetUserByID(userID); err != nil {
		return err
	}

	updates := map[string]any{}
	if payload.Email != nil {
		updates["email"] = *payload.Email
	}
	if payload.Firstname != nil {
		updates["firstname"] = *payload.Firstname
	}
	if payload.Lastname != nil {
		updates["lastname"] = *payload.Lastname
	}
	if payload.IsAdmin != nil {
		updates["is_admin"] = *payload.IsAdmin
	}
	if len(updates) == 0 {
		return nil
	}

	err := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
	if err != nil {
		return NewStoreError("update user", err)
	}
	return nil
}

// DeleteUser removes the user and, through the ownership chain, their
// carts and cart items. Reservations keep the user id but stay put.
func (s *userService) DeleteUser(userID string) error {
	if _, err := s.GetUserByID(userID); err != nil {
		return err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var carts []models.Cart
		if err := tx.Where("user_id = ?", userID).Find(&carts).Error; err != nil {
			return err
		}
		if len(carts) > 0 {
			cartIDs := make([]string, 0, len(carts))
			for _, cart := range carts {
				cartIDs = append(cartIDs, cart.ID)
			}
			if err := tx.Where("cart_id IN ?", cartIDs).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", userID).Delete(&models.Cart{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", userID).Delete(&models.User{}).Error
	})
	if err != nil {
		return NewStoreError("delete user", err)
	}
	return nil
}

func (s *userService) UserExists(userID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error
	if err != nil {
		return false, NewStoreError("check user", err)
	}
	return count > 0, nil
}
