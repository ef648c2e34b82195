package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/bookloop/bookloop-api/models"
	"github.com/bookloop/bookloop-api/services"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 12 * time.Hour

type AuthController struct {
	users services.UserService
}

func NewAuthController(users services.UserService) *AuthController {
	return &AuthController{users: users}
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// Signup handles user registration.
func (c *AuthController) Signup(ctx *gin.Context) {
	var signupData models.SignupData
	if err := ctx.ShouldBindJSON(&signupData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := c.users.CreateUser(signupData)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "User created successfully!",
		"user":    user,
	})
}

// Login handles user authentication.
func (c *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if loginData.Email == "" && loginData.Password == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Missing credentials")
		return
	}
	if loginData.Email == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Email is required!")
		return
	}
	if loginData.Password == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, "Password is required!")
		return
	}

	user, err := c.users.GetUserByEmail(loginData.Email)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginData.Password)); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Incorrect password!")
		return
	}

	tokenString, err := generateJWT(user)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}
