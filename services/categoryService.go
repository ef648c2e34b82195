package services

import (
	"errors"

	"github.com/bookloop/bookloop-api/models"
	"gorm.io/gorm"
)

type CategoryUpdateData struct {
	Name *string `json:"name"`
}

type CategoryService interface {
	GetAllCategories() ([]models.Category, error)
	GetCategoryByID(categoryID string) (models.Category, error)
	CreateCategory(name string) (models.Category, error)
	UpdateCategory(categoryID string, payload CategoryUpdateData) error
	DeleteCategory(categoryID string) error
}

type categoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) CategoryService {
	return &categoryService{db: db}
}

func (s *categoryService) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, NewStoreError("fetch categories", err)
	}
	return categories, nil
}

func (s *categoryService) GetCategoryByID(categoryID string) (models.Category, error) {
	var category models.Category
	err := s.db.Where("id = ?", categoryID).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, NewNotFoundError("category not found!")
	}
	if err != nil {
		return models.Category{}, NewStoreError("fetch category", err)
	}
	return category, nil
}

func (s *categoryService) CreateCategory(name string) (models.Category, error) {
	if name == "" {
		return models.Category{}, NewValidationError("category name is required!")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return models.Category{}, NewStoreError("check category name", err)
	}
	if count > 0 {
		return models.Category{}, NewConflictError("category name already exists!")
	}

	category := models.Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return models.Category{}, NewStoreError("create category", err)
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(categoryID string, payload CategoryUpdateData) error {
	if _, err := s.GetCategoryByID(categoryID); err != nil {
		return err
	}
	if payload.Name == nil || *payload.Name == "" {
		return NewValidationError("category name is required!")
	}

	err := s.db.Model(&models.Category{}).Where("id = ?", categoryID).
		Update("name", *payload.Name).Error
	if err != nil {
		return NewStoreError("update category", err)
	}
	return nil
}

func (s *categoryService) DeleteCategory(categoryID string) error {
	category, err := s.GetCategoryByID(categoryID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM book_category WHERE category_id = ?", categoryID).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		return NewStoreError("delete category", err)
	}
	return nil
}
