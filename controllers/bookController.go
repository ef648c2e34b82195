package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bookloop/bookloop-api/services"
	"github.com/gin-gonic/gin"
)

type BookController struct {
	books services.BookService
}

func NewBookController(books services.BookService) *BookController {
	return &BookController{books: books}
}

// GetBooks lists the catalog with optional title search, category filter,
// sort direction and pagination.
func (c *BookController) GetBooks(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))

	query := services.BookQuery{
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
		Sort:     ctx.Query("sort"),
		Page:     page,
		Limit:    limit,
	}

	books, total, err := c.books.GetBooks(query)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	totalPages := (total + int64(query.Limit) - 1) / int64(query.Limit)
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"books": books,
		"metadata": gin.H{
			"totalItems":   total,
			"totalPages":   totalPages,
			"currentPage":  query.Page,
			"itemsPerPage": query.Limit,
		},
	})
}

func (c *BookController) GetBook(ctx *gin.Context) {
	book, err := c.books.GetBookByID(ctx.Param("bookId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, book)
}

func (c *BookController) CreateBook(ctx *gin.Context) {
	var bookData services.BookData
	if err := ctx.ShouldBindJSON(&bookData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	book, err := c.books.CreateBook(bookData)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"data": book})
}

func (c *BookController) UpdateBook(ctx *gin.Context) {
	var payload services.BookUpdateData
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.books.UpdateBook(ctx.Param("bookId"), payload); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"data": "book updated successfully!"})
}

func (c *BookController) DeleteBook(ctx *gin.Context) {
	if err := c.books.DeleteBook(ctx.Param("bookId")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"data": "book deleted successfully!"})
}

func (c *BookController) AddBookCategory(ctx *gin.Context) {
	err := c.books.AddBookCategory(ctx.Param("bookId"), ctx.Param("categoryId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "category added to book!"})
}

func (c *BookController) RemoveBookCategory(ctx *gin.Context) {
	err := c.books.RemoveBookCategory(ctx.Param("bookId"), ctx.Param("categoryId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "category removed from book!"})
}

// getAWSUploader returns a configured S3 uploader.
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadBookCover stores the uploaded cover image in S3 and records the
// public URL on the book.
func (c *BookController) UploadBookCover(ctx *gin.Context) {
	bookID := ctx.Param("bookId")

	file, err := ctx.FormFile("cover")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No cover file uploaded")
		return
	}

	if _, err := c.books.GetBookByID(bookID); err != nil {
		handleServiceError(ctx, err)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		log.Println("AWS config error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to configure AWS")
		return
	}

	f, err := file.Open()
	if err != nil {
		log.Printf("Error opening file %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to read cover file")
		return
	}
	defer f.Close()

	bucket := os.Getenv("S3_BUCKET")
	// Unique key so re-uploads never overwrite an older cover.
	key := fmt.Sprintf("covers/%s-%s-%s", bookID, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Println("S3 upload error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload cover")
		return
	}

	if err := c.books.SetBookImage(bookID, result.Location); err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"url": result.Location})
}
