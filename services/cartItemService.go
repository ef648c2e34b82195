package services

import (
	"errors"
	"time"

	"github.com/bookloop/bookloop-api/models"
	"gorm.io/gorm"
)

type CartItemUpdateData struct {
	Quantity *int `json:"quantity"`
}

type CartItemService interface {
	// AddCartItem merges with the existing line for (cartID, bookID) if one
	// exists. The returned bool reports whether a new line was created.
	AddCartItem(cartID, bookID string) (models.CartItem, bool, error)
	GetCartItems(cartID string) ([]models.CartItemDetail, error)
	UpdateCartItem(cartID, bookID string, payload CartItemUpdateData) error
	DeleteCartItem(cartID, bookID string) error
}

type cartItemService struct {
	db *gorm.DB
}

func NewCartItemService(db *gorm.DB) CartItemService {
	return &cartItemService{db: db}
}

// AddCartItem adds one copy of a book to a cart. The lookup is scoped to
// the cart, never global by book: the same book in another user's cart is
// a different line item.
func (s *cartItemService) AddCartItem(cartID, bookID string) (models.CartItem, bool, error) {
	if cartID == "" {
		return models.CartItem{}, false, NewValidationError("cart id is required!")
	}
	if bookID == "" {
		return models.CartItem{}, false, NewValidationError("book id is required!")
	}

	var existing models.CartItem
	err := s.db.Where("cart_id = ? AND book_id = ?", cartID, bookID).First(&existing).Error

	if err == nil {
		now := time.Now()
		existing.Quantity++
		existing.UpdatedOn = &now
		if err := s.db.Save(&existing).Error; err != nil {
			return models.CartItem{}, false, NewStoreError("update cart item quantity", err)
		}
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, false, NewStoreError("look up cart item", err)
	}

	item := models.CartItem{CartID: cartID, BookID: bookID, Quantity: 1}
	if err := s.db.Create(&item).Error; err != nil {
		return models.CartItem{}, false, NewStoreError("create cart item", err)
	}
	return item, true, nil
}

// GetCartItems lists the cart's lines joined with each book's catalog
// fields for display.
func (s *cartItemService) GetCartItems(cartID string) ([]models.CartItemDetail, error) {
	var items []models.CartItemDetail
	err := s.db.Table("cart_item").
		Select(`book.title, book.author, book.release_date, book.available,
			book.short_description, book.long_description, book.image,
			cart_item.cart_id, cart_item.book_id, cart_item.quantity,
			cart_item.created_on, cart_item.updated_on`).
		Joins("INNER JOIN book ON cart_item.book_id = book.id").
		Where("cart_item.cart_id = ?", cartID).
		Order("cart_item.created_on asc").
		Scan(&items).Error
	if err != nil {
		return nil, NewStoreError("fetch cart items", err)
	}
	return items, nil
}

func (s *cartItemService) UpdateCartItem(cartID, bookID string, payload CartItemUpdateData) error {
	item, err := s.findItem(cartID, bookID)
	if err != nil {
		return err
	}

	if payload.Quantity != nil {
		if *payload.Quantity < 1 {
			return NewValidationError("quantity must be at least 1!")
		}
		now := time.Now()
		item.Quantity = *payload.Quantity
		item.UpdatedOn = &now
	}

	if err := s.db.Save(&item).Error; err != nil {
		return NewStoreError("update cart item", err)
	}
	return nil
}

func (s *cartItemService) DeleteCartItem(cartID, bookID string) error {
	item, err := s.findItem(cartID, bookID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return NewStoreError("delete cart item", err)
	}
	return nil
}

func (s *cartItemService) findItem(cartID, bookID string) (models.CartItem, error) {
	var item models.CartItem
	err := s.db.Where("cart_id = ? AND book_id = ?", cartID, bookID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.CartItem{}, NewNotFoundError("cart item not found!")
	}
	if err != nil {
		return models.CartItem{}, NewStoreError("look up cart item", err)
	}
	return item, nil
}
