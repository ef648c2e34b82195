package services

import (
	"errors"

	"github.com/bookloop/bookloop-api/models"
	"gorm.io/gorm"
)

type ReviewData struct {
	UserID  string `json:"user_id"`
	BookID  string `json:"book_id"`
	Comment string `json:"comment"`
	Rating  *int   `json:"rating"`
}

type ReviewUpdateData struct {
	Comment string `json:"comment"`
	Rating  *int   `json:"rating"`
}

type ReviewService interface {
	// AddReview upserts per (user, book): a user's second review of the
	// same book replaces the first. The bool reports whether a new row
	// was created.
	AddReview(data ReviewData) (models.Review, bool, error)
	GetReviewByID(reviewID string) (models.Review, error)
	GetReviewsByBookID(bookID string) ([]models.Review, error)
	GetReviewsByUserID(userID string) ([]models.Review, error)
	UpdateReview(reviewID string, payload ReviewUpdateData) error
	DeleteReview(reviewID string) error
}

type reviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) ReviewService {
	return &reviewService{db: db}
}

func (s *reviewService) AddReview(data ReviewData) (models.Review, bool, error) {
	if data.UserID == "" {
		return models.Review{}, false, NewValidationError("user_id is required!")
	}
	if data.BookID == "" {
		return models.Review{}, false, NewValidationError("book_id is required!")
	}
	if data.Comment == "" && data.Rating == nil {
		return models.Review{}, false, NewValidationError("missing review!")
	}

	rating := 0
	if data.Rating != nil {
		rating = *data.Rating
	}

	var existing models.Review
	err := s.db.Where("user_id = ? AND book_id = ?", data.UserID, data.BookID).First(&existing).Error
	if err == nil {
		existing.Comment = data.Comment
		existing.Rating = rating
		if err := s.db.Save(&existing).Error; err != nil {
			return models.Review{}, false, NewStoreError("update review", err)
		}
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Review{}, false, NewStoreError("look up review", err)
	}

	review := models.Review{
		UserID:  data.UserID,
		BookID:  data.BookID,
		Comment: data.Comment,
		Rating:  rating,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return models.Review{}, false, NewStoreError("create review", err)
	}
	return review, true, nil
}

func (s *reviewService) GetReviewByID(reviewID string) (models.Review, error) {
	var review models.Review
	err := s.db.Where("id = ?", reviewID).First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Review{}, NewNotFoundError("review not found!")
	}
	if err != nil {
		return models.Review{}, NewStoreError("fetch review", err)
	}
	return review, nil
}

func (s *reviewService) GetReviewsByBookID(bookID string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("book_id = ?", bookID).Order("created_on desc").Find(&reviews).Error
	if err != nil {
		return nil, NewStoreError("fetch reviews by book", err)
	}
	return reviews, nil
}

func (s *reviewService) GetReviewsByUserID(userID string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("user_id = ?", userID).Order("created_on desc").Find(&reviews).Error
	if err != nil {
		return nil, NewStoreError("fetch reviews by user", err)
	}
	return reviews, nil
}

func (s *reviewService) UpdateReview(reviewID string, payload ReviewUpdateData) error {
	if payload.Comment == "" || payload.Rating == nil {
		return NewValidationError("missing review!")
	}

	review, err := s.GetReviewByID(reviewID)
	if err != nil {
		return err
	}

	review.Comment = payload.Comment
	review.Rating = *payload.Rating
	if err := s.db.Save(&review).Error; err != nil {
		return NewStoreError("update review", err)
	}
	return nil
}

func (s *reviewService) DeleteReview(reviewID string) error {
	review, err := s.GetReviewByID(reviewID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", reviewID).Delete(&models.Reply{}).Error; err != nil {
			return err
		}
		return tx.Delete(&review).Error
	})
	if err != nil {
		return NewStoreError("delete review", err)
	}
	return nil
}
