package services

import (
	"errors"
	"time"

	"github.com/bookloop/bookloop-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookData struct {
	Title            string `json:"title"`
	Author           string `json:"author"`
	ReleaseDate      string `json:"release_date"`
	Available        *int   `json:"available"`
	ShortDescription string `json:"short_description"`
	LongDescription  string `json:"long_description"`
	Image            string `json:"image"`
}

type BookUpdateData struct {
	Title            *string `json:"title"`
	Author           *string `json:"author"`
	ReleaseDate      *string `json:"release_date"`
	Available        *int    `json:"available"`
	ShortDescription *string `json:"short_description"`
	LongDescription  *string `json:"long_description"`
	Image            *string `json:"image"`
}

// BookQuery drives the catalog listing: title search, category filter,
// sort direction on created_on, and pagination.
type BookQuery struct {
	Search   string
	Category string
	Sort     string
	Page     int
	Limit    int
}

type BookService interface {
	GetBooks(query BookQuery) ([]models.Book, int64, error)
	GetBookByID(bookID string) (models.Book, error)
	CreateBook(data BookData) (models.Book, error)
	UpdateBook(bookID string, payload BookUpdateData) error
	DeleteBook(bookID string) error
	SetBookImage(bookID, imageURL string) error
	AddBookCategory(bookID, categoryID string) error
	RemoveBookCategory(bookID, categoryID string) error

	// BookExists implements the verifier capability consumed by the
	// reservation engine.
	BookExists(bookID string) (bool, error)
}

type bookService struct {
	db *gorm.DB
}

func NewBookService(db *gorm.DB) BookService {
	return &bookService{db: db}
}

func (s *bookService) GetBooks(query BookQuery) ([]models.Book, int64, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 15
	}
	if query.Sort != "asc" && query.Sort != "desc" {
		query.Sort = "desc"
	}

	base := s.db.Model(&models.Book{})
	if query.Search != "" {
		base = base.Where("title LIKE ?", "%"+query.Search+"%")
	}
	if query.Category != "" {
		base = base.
			Joins("INNER JOIN book_category ON book_category.book_id = book.id").
			Where("book_category.category_id = ?", query.Category)
	}
	// Reusable session: the chain serves both the count and the page query.
	base = base.Session(&gorm.Session{})

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, NewStoreError("count books", err)
	}

	var books []models.Book
	err := base.Preload("Categories").
		Order("created_on " + query.Sort).
		Limit(query.Limit).
		Offset((query.Page - 1) * query.Limit).
		Find(&books).Error
	if err != nil {
		return nil, 0, NewStoreError("fetch books", err)
	}
	return books, count, nil
}

func (s *bookService) GetBookByID(bookID string) (models.Book, error) {
	var book models.Book
	err := s.db.Preload("Categories").Where("id = ?", bookID).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Book{}, NewNotFoundError("Book not found!")
	}
	if err != nil {
		return models.Book{}, NewStoreError("fetch book", err)
	}
	return book, nil
}

func (s *bookService) CreateBook(data BookData) (models.Book, error) {
	if data.Title == "" || data.Author == "" || data.ReleaseDate == "" ||
		data.Available == nil || data.ShortDescription == "" || data.LongDescription == "" {
		return models.Book{}, NewValidationError("All fields are required!")
	}

	releaseDate, err := parseReleaseDate(data.ReleaseDate)
	if err != nil {
		return models.Book{}, NewValidationError("invalid release date!")
	}

	var count int64
	if err := s.db.Model(&models.Book{}).Where("title = ?", data.Title).Count(&count).Error; err != nil {
		return models.Book{}, NewStoreError("check book title", err)
	}
	if count > 0 {
		return models.Book{}, NewConflictError("A book with this title already exists!")
	}

	book := models.Book{
		Title:            data.Title,
		Author:           data.Author,
		ReleaseDate:      releaseDate,
		Available:        *data.Available,
		ShortDescription: data.ShortDescription,
		LongDescription:  data.LongDescription,
		Image:            data.Image,
	}
	if err := s.db.Create(&book).Error; err != nil {
		return models.Book{}, NewStoreError("create book", err)
	}
	return book, nil
}

func (s *bookService) UpdateBook(bookID string, payload BookUpdateData) error {
	if _, err := s.GetBookByID(bookID); err != nil {
		return err
	}

	updates := map[string]any{}
	if payload.Title != nil {
		updates["title"] = *payload.Title
	}
	if payload.Author != nil {
		updates["author"] = *payload.Author
	}
	if payload.ReleaseDate != nil {
		releaseDate, err := parseReleaseDate(*payload.ReleaseDate)
		if err != nil {
			return NewValidationError("invalid release date!")
		}
		updates["release_date"] = releaseDate
	}
	if payload.Available != nil {
		updates["available"] = *payload.Available
	}
	if payload.ShortDescription != nil {
		updates["short_description"] = *payload.ShortDescription
	}
	if payload.LongDescription != nil {
		updates["long_description"] = *payload.LongDescription
	}
	if payload.Image != nil {
		updates["image"] = *payload.Image
	}
	if len(updates) == 0 {
		return nil
	}

	err := s.db.Model(&models.Book{}).Where("id = ?", bookID).Updates(updates).Error
	if err != nil {
		return NewStoreError("update book", err)
	}
	return nil
}

func (s *bookService) DeleteBook(bookID string) error {
	book, err := s.GetBookByID(bookID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", bookID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("book_id = ?", bookID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&book).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&book).Error
	})
	if err != nil {
		return NewStoreError("delete book", err)
	}
	return nil
}

func (s *bookService) SetBookImage(bookID, imageURL string) error {
	if _, err := s.GetBookByID(bookID); err != nil {
		return err
	}
	err := s.db.Model(&models.Book{}).Where("id = ?", bookID).Update("image", imageURL).Error
	if err != nil {
		return NewStoreError("update book image", err)
	}
	return nil
}

func (s *bookService) AddBookCategory(bookID, categoryID string) error {
	book, err := s.GetBookByID(bookID)
	if err != nil {
		return err
	}

	var category models.Category
	err = s.db.Where("id = ?", categoryID).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("category not found!")
	}
	if err != nil {
		return NewStoreError("fetch category", err)
	}

	if err := s.db.Model(&book).Association("Categories").Append(&category); err != nil {
		return NewStoreError("add book category", err)
	}
	return nil
}

func (s *bookService) RemoveBookCategory(bookID, categoryID string) error {
	book, err := s.GetBookByID(bookID)
	if err != nil {
		return err
	}

	var category models.Category
	err = s.db.Where("id = ?", categoryID).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError("category not found!")
	}
	if err != nil {
		return NewStoreError("fetch category", err)
	}

	if err := s.db.Model(&book).Association("Categories").Delete(&category); err != nil {
		return NewStoreError("remove book category", err)
	}
	return nil
}

func (s *bookService) BookExists(bookID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Book{}).Where("id = ?", bookID).Count(&count).Error
	if err != nil {
		return false, NewStoreError("check book", err)
	}
	return count > 0, nil
}

func parseReleaseDate(value string) (datatypes.Date, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return datatypes.Date(t), nil
		}
	}
	return datatypes.Date{}, errors.New("unrecognized date format")
}
