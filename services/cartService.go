package services

import (
	"errors"

	"github.com/bookloop/bookloop-api/models"
	"gorm.io/gorm"
)

// UserVerifier is the slice of the identity collaborator the cart and
// reservation engines need: an existence check, nothing else.
type UserVerifier interface {
	UserExists(userID string) (bool, error)
}

type CartService interface {
	CreateCart(userID string) (models.Cart, error)
	GetActiveCart(userID string) (models.Cart, error)
	GetCartsByUserID(userID string) ([]models.Cart, error)
	UpdateCart(userID string, enabled *bool) error
	DeleteCart(userID string) error
}

type cartService struct {
	db    *gorm.DB
	users UserVerifier
}

func NewCartService(db *gorm.DB, users UserVerifier) CartService {
	return &cartService{db: db, users: users}
}

// CreateCart opens a new shopping session for the user. At most one cart
// per user may be enabled at any time, so an existing active cart is a
// conflict rather than a reason to reuse it.
func (s *cartService) CreateCart(userID string) (models.Cart, error) {
	if userID == "" {
		return models.Cart{}, NewValidationError("userId is required!")
	}

	exists, err := s.users.UserExists(userID)
	if err != nil {
		return models.Cart{}, err
	}
	if !exists {
		return models.Cart{}, NewNotFoundError("User not found")
	}

	var active models.Cart
	err = s.db.Where("user_id = ? AND enabled = ?", userID, true).First(&active).Error
	if err == nil {
		return models.Cart{}, NewConflictError("cart already exists!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, NewStoreError("look up active cart", err)
	}

	cart := models.Cart{UserID: userID, Enabled: true}
	if err := s.db.Create(&cart).Error; err != nil {
		return models.Cart{}, NewStoreError("create cart", err)
	}
	return cart, nil
}

func (s *cartService) GetActiveCart(userID string) (models.Cart, error) {
	var cart models.Cart
	err := s.db.Where("user_id = ? AND enabled = ?", userID, true).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, NewNotFoundError("no active cart found!")
	}
	if err != nil {
		return models.Cart{}, NewStoreError("fetch active cart", err)
	}
	return cart, nil
}

// GetCartsByUserID returns every cart the user has accumulated, active and
// historical, newest first.
func (s *cartService) GetCartsByUserID(userID string) ([]models.Cart, error) {
	var carts []models.Cart
	err := s.db.Where("user_id = ?", userID).Order("created_on desc").Find(&carts).Error
	if err != nil {
		return nil, NewStoreError("fetch carts", err)
	}
	return carts, nil
}

// UpdateCart flips the enabled flag on the user's most recent cart in
// place. No new row is created. Re-enabling while a different cart is
// already active would break the one-active-cart invariant.
func (s *cartService) UpdateCart(userID string, enabled *bool) error {
	if enabled == nil {
		return NewValidationError("enabled is required!")
	}

	var cart models.Cart
	err := s.db.Where("user_id = ?", userID).Order("created_on desc").First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("cart not found!")
	}
	if err != nil {
		return NewStoreError("fetch cart", err)
	}

	if *enabled && !cart.Enabled {
		var active models.Cart
		err := s.db.Where("user_id = ? AND enabled = ? AND id <> ?", userID, true, cart.ID).
			First(&active).Error
		if err == nil {
			return NewConflictError("cart already exists!")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return NewStoreError("look up active cart", err)
		}
	}

	if err := s.db.Model(&cart).Update("enabled", *enabled).Error; err != nil {
		return NewStoreError("update cart", err)
	}
	return nil
}

// DeleteCart hard-deletes every cart the user owns together with the cart
// items. Reservations created from those carts are independent records and
// are left alone.
func (s *cartService) DeleteCart(userID string) error {
	var carts []models.Cart
	if err := s.db.Where("user_id = ?", userID).Find(&carts).Error; err != nil {
		return NewStoreError("fetch carts", err)
	}
	if len(carts) == 0 {
		return NewNotFoundError("Cart not found!")
	}

	cartIDs := make([]string, 0, len(carts))
	for _, cart := range carts {
		cartIDs = append(cartIDs, cart.ID)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id IN ?", cartIDs).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.Cart{}).Error
	})
	if err != nil {
		return NewStoreError("delete cart", err)
	}
	return nil
}
