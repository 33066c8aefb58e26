package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-booking-server/internal/config"
	"clinic-booking-server/internal/middleware"
	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/store"
	"clinic-booking-server/internal/utils"
)

// AuthHandler handles signup, login and profile requests.
type AuthHandler struct {
	Users store.UserStore
	Cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users store.UserStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Users: users, Cfg: cfg}
}

// SignupRequest represents the request body for user registration.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup handles user registration.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	// Check if user already exists
	if _, err := h.Users.FindByEmail(c.Request.Context(), req.Email); err == nil {
		utils.Conflict(c, "User already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("signup: lookup %q: %v", req.Email, err)
		utils.InternalServerError(c, "Signup failed!")
		return
	}

	user := models.User{Name: req.Name, Email: req.Email}
	if err := user.SetPassword(req.Password); err != nil {
		log.Printf("signup: hash password: %v", err)
		utils.InternalServerError(c, "Signup failed!")
		return
	}

	if err := h.Users.Create(c.Request.Context(), &user); err != nil {
		// The unique index catches signups that raced past the lookup.
		if errors.Is(err, store.ErrDuplicateEmail) {
			utils.Conflict(c, "User already exists")
			return
		}
		log.Printf("signup: create user: %v", err)
		utils.InternalServerError(c, "Signup failed!")
		return
	}

	utils.Message(c, "Signup successful!")
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// Login handles user login and token issuance.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("login: lookup %q: %v", req.Email, err)
		utils.InternalServerError(c, "Login failed!")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Incorrect password")
		return
	}

	token, err := utils.GenerateToken(user, h.Cfg.JWTSecret)
	if err != nil {
		log.Printf("login: sign token: %v", err)
		utils.InternalServerError(c, "Login failed!")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Msg: "Login successful!", Token: token})
}

// Profile returns the account identified by the bearer token.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		log.Printf("profile: lookup %q: %v", userID, err)
		utils.InternalServerError(c, "Failed to fetch profile!")
		return
	}

	c.JSON(http.StatusOK, user.Sanitize())
}
