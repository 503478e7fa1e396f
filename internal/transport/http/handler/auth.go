package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DRITI2906/HealthMate/internal/app"
	"github.com/DRITI2906/HealthMate/internal/model"
	"github.com/DRITI2906/HealthMate/internal/transport/http/middleware"
	"github.com/DRITI2906/HealthMate/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type SignupRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email,max=100"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
}

type SigninRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileUpdateRequest struct {
	FullName    *string `json:"full_name"`
	DateOfBirth *string `json:"date_of_birth"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.authService.Signup(app.SignupInput{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUsernameExists):
			response.Error(c, http.StatusBadRequest, "Username already registered")
		case errors.Is(err, app.ErrEmailExists):
			response.Error(c, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "Error creating user")
		}
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"message": "User created successfully",
		"user_id": user.ID,
	})
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.authService.Signin(app.SigninInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidCredential):
			response.Error(c, http.StatusUnauthorized, "Incorrect username or password")
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "signin failed")
		}
		return
	}

	response.OK(c, gin.H{
		"access_token": result.Token,
		"token_type":   "bearer",
		"user_id":      result.User.ID,
		"username":     result.User.Username,
		"email":        result.User.Email,
	})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusUnauthorized, "user not found")
		default:
			response.Error(c, http.StatusInternalServerError, "fetch profile failed")
		}
		return
	}

	fullName := user.FullName
	if fullName == "" {
		fullName = user.Username
	}
	dob := ""
	if user.DateOfBirth != nil {
		dob = user.DateOfBirth.Format("2006-01-02")
	}

	response.OK(c, gin.H{
		"user_id":       user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"full_name":     fullName,
		"date_of_birth": dob,
	})
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.authService.UpdateProfile(userID, app.ProfileUpdateInput{
		FullName:    req.FullName,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusUnauthorized, "user not found")
		default:
			response.Error(c, http.StatusInternalServerError, "update profile failed")
		}
		return
	}

	response.OK(c, profileView(user))
}

func profileView(user *model.User) gin.H {
	var dob interface{}
	if user.DateOfBirth != nil {
		dob = user.DateOfBirth.Format("2006-01-02")
	}
	return gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"full_name":     user.FullName,
		"date_of_birth": dob,
	}
}
