package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the BookLoop API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/signup" - Create user account
- POST "/api/auth/login" - Access user account

USERS
- GET "/api/users" - Get all users
- GET "/api/users/:userId" - Get user by ID
- POST "/api/users" - Create a user (admin)
- PATCH "/api/users/:userId" - Update a user
- DELETE "/api/users/:userId" - Delete a user

BOOKS
- GET "/api/books" - List books (search, category, sort, page, limit)
- GET "/api/books/:bookId" - Get book by ID
- POST "/api/books" - Create a book (admin)
- PATCH "/api/books/:bookId" - Update a book (admin)
- DELETE "/api/books/:bookId" - Delete a book (admin)
- POST "/api/books/:bookId/cover" - Upload book cover (admin)
- POST "/api/books/:bookId/categories/:categoryId" - Add book category (admin)
- DELETE "/api/books/:bookId/categories/:categoryId" - Remove book category (admin)

CATEGORIES
- GET "/api/categories" - Get all categories
- GET "/api/categories/:categoryId" - Get category by ID
- POST "/api/categories" - Create a category (admin)
- PATCH "/api/categories/:categoryId" - Update a category (admin)
- DELETE "/api/categories/:categoryId" - Delete a category (admin)

CARTS
- POST "/api/carts" - Open a new cart
- GET "/api/carts/:userId" - Get all carts for a user
- GET "/api/carts/active/:userId" - Get the user's active cart
- PATCH "/api/carts/:userId" - Enable or disable the latest cart
- DELETE "/api/carts/:userId" - Delete a user's carts

CART ITEMS
- POST "/api/cart-items" - Add a book to a cart
- GET "/api/cart-items/:cartId" - List a cart's items
- PATCH "/api/cart-items/:cartId/:bookId" - Update an item quantity
- DELETE "/api/cart-items/:cartId/:bookId" - Remove an item

RESERVATIONS
- POST "/api/reservations" - Create a loan from a cart line
- GET "/api/reservations/:reservationId" - Get reservation by ID
- GET "/api/reservations/user/:userId" - Get a user's reservations
- GET "/api/reservations/book/:bookId" - Get a book's outstanding loans
- PATCH "/api/reservations/:reservationId" - Update reservation status

REVIEWS
- POST "/api/reviews" - Add or replace a review
- GET "/api/reviews/:reviewId" - Get review by ID
- GET "/api/reviews/book/:bookId" - Get a book's reviews
- GET "/api/reviews/user/:userId" - Get a user's reviews
- PATCH "/api/reviews/:reviewId" - Update a review
- DELETE "/api/reviews/:reviewId" - Delete a review

REPLIES
- GET "/api/replies" - Get all replies
- GET "/api/replies/review/:reviewId" - Get replies for a review
- GET "/api/replies/user/:userId" - Get a user's replies
- POST "/api/replies" - Add a reply
- PATCH "/api/replies/:reviewId" - Update a review's replies
- DELETE "/api/replies/:reviewId" - Delete a review's replies`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
