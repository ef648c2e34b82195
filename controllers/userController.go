package controllers

import (
	"net/http"

	"github.com/bookloop/bookloop-api/models"
	"github.com/bookloop/bookloop-api/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	users services.UserService
}

func NewUserController(users services.UserService) *UserController {
	return &UserController{users: users}
}

func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.users.GetAllUsers()
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, users)
}

func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.users.GetUserByID(ctx.Param("userId"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, user)
}

// CreateUser is the admin path for provisioning accounts directly.
func (c *UserController) CreateUser(ctx *gin.Context) {
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
	sendJSONResponse(ctx, http.StatusOK, gin.H{"data": user})
}

func (c *UserController) UpdateUser(ctx *gin.Context) {
	var payload services.UserUpdateData
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.users.UpdateUser(ctx.Param("userId"), payload); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"data": "user updated successfully!"})
}

func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.users.DeleteUser(ctx.Param("userId")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"data": "user deleted successfully!"})
}
