package api

import (
	"errors"
	"net/http"

	"ship_telemetry/internal/app/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	Repository *repository.Repository
}

// @Summary Register a new user
// @Description Register a new user with username and password
// @Tags users
// @Accept json
// @Produce json
// @Param user body object{username=string,password=string} true "User info"
// @Success 201 {object} ds.User
// @Failure 400 {object} object "error: message"
// @Failure 409 {object} object "error: message"
// @Router /users/ [post]
func (h *UserHandler) RegisterUserAPI(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.Repository.CreateUser(body.Username, body.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// @Summary Issue an access token
// @Description Verify credentials and return a bearer token
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} object "access_token: string, token_type: bearer"
// @Failure 401 {object} object "error: message"
// @Router /token [post]
func (h *UserHandler) TokenAPI(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.Repository.LoginUser(username, password)
	if err != nil {
		// same answer for unknown user and wrong password
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// @Summary Current user
// @Description Return the user resolved from the bearer token
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ds.User
// @Failure 401 {object} object "error: message"
// @Router /users/me [get]
func (h *UserHandler) MeAPI(c *gin.Context) {
	id, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
		return
	}
	user, err := h.Repository.GetUserByID(id.(int))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// @Summary Logout
// @Description Drop the stored token for the current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object "message: string"
// @Router /logout [post]
func (h *UserHandler) LogoutUserAPI(c *gin.Context) {
	username := c.GetString("username")
	if err := h.Repository.LogoutUser(username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
