package services

import (
	"github.com/bookloop/bookloop-api/models"
	"gorm.io/gorm"
)

type ReplyData struct {
	UserID   string `json:"user_id"`
	ReviewID string `json:"review_id"`
	Comment  string `json:"comment"`
}

type ReplyUpdateData struct {
	Comment string `json:"comment"`
}

type ReplyService interface {
	GetAllReplies() ([]models.Reply, error)
	GetRepliesByReviewID(reviewID string) ([]models.Reply, error)
	GetRepliesByUserID(userID string) ([]models.Reply, error)
	AddReply(data ReplyData) (models.Reply, error)
	UpdateReply(reviewID string, payload ReplyUpdateData) error
	DeleteReply(reviewID string) error
}

type replyService struct {
	db *gorm.DB
}

func NewReplyService(db *gorm.DB) ReplyService {
	return &replyService{db: db}
}

func (s *replyService) GetAllReplies() ([]models.Reply, error) {
	var replies []models.Reply
	if err := s.db.Order("created_on desc").Find(&replies).Error; err != nil {
		return nil, NewStoreError("fetch replies", err)
	}
	return replies, nil
}

func (s *replyService) GetRepliesByReviewID(reviewID string) ([]models.Reply, error) {
	var replies []models.Reply
	err := s.db.Where("review_id = ?", reviewID).Order("created_on asc").Find(&replies).Error
	if err != nil {
		return nil, NewStoreError("fetch replies by review", err)
	}
	return replies, nil
}

func (s *replyService) GetRepliesByUserID(userID string) ([]models.Reply, error) {
	var replies []models.Reply
	err := s.db.Where("user_id = ?", userID).Order("created_on desc").Find(&replies).Error
	if err != nil {
		return nil, NewStoreError("fetch replies by user", err)
	}
	return replies, nil
}

func (s *replyService) AddReply(data ReplyData) (models.Reply, error) {
	if data.UserID == "" {
		return models.Reply{}, NewValidationError("sign up before replying!")
	}
	if data.ReviewID == "" {
		return models.Reply{}, NewNotFoundError("review not found to add reply!")
	}
	if data.Comment == "" {
		return models.Reply{}, NewValidationError("comment cannot be null!")
	}

	var count int64
	if err := s.db.Model(&models.Review{}).Where("id = ?", data.ReviewID).Count(&count).Error; err != nil {
		return models.Reply{}, NewStoreError("check review", err)
	}
	if count == 0 {
		return models.Reply{}, NewNotFoundError("review not found to add reply!")
	}

	reply := models.Reply{
		UserID:   data.UserID,
		ReviewID: data.ReviewID,
		Comment:  data.Comment,
	}
	if err := s.db.Create(&reply).Error; err != nil {
		return models.Reply{}, NewStoreError("create reply", err)
	}
	return reply, nil
}

// UpdateReply rewrites the reply thread comment for a review. Replies are
// keyed by review in the public surface, mirroring how they are browsed.
func (s *replyService) UpdateReply(reviewID string, payload ReplyUpdateData) error {
	replies, err := s.GetRepliesByReviewID(reviewID)
	if err != nil {
		return err
	}
	if len(replies) == 0 {
		return NewNotFoundError("reply not found!")
	}

	err = s.db.Model(&models.Reply{}).Where("review_id = ?", reviewID).
		Update("comment", payload.Comment).Error
	if err != nil {
		return NewStoreError("update reply", err)
	}
	return nil
}

func (s *replyService) DeleteReply(reviewID string) error {
	replies, err := s.GetRepliesByReviewID(reviewID)
	if err != nil {
		return err
	}
	if len(replies) == 0 {
		return NewNotFoundError("reply not found!")
	}

	err = s.db.Where("review_id = ?", reviewID).Delete(&models.Reply{}).Error
	if err != nil {
		return NewStoreError("delete reply", err)
	}
	return nil
}
