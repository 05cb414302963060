package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
	"github.com/dilshodmuxtorov/TodoLIstApi/internal/http/middleware"
)

// UserHandlers handles account lifecycle HTTP requests
type UserHandlers struct {
	accountSvc domain.AccountService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(accountSvc domain.AccountService) *UserHandlers {
	return &UserHandlers{accountSvc: accountSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Age      int    `json:"age" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyRequest represents account verification request
type VerifyRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// Register handles user registration. The account is created inactive, the
// verification code is emailed, and a token pair is issued so the client can
// call the verify endpoint.
func (h *UserHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, bindingErrorDetails(err))
		return
	}

	if err := domain.ValidatePassword(req.Password); err != nil {
		validationError(c, map[string]string{"password": err.Error()})
		return
	}

	_, tokens, err := h.accountSvc.Register(c.Request.Context(), req.Name, req.Surname, req.Age, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrOTPResendLimit) {
			validationError(c, map[string]string{"email": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// Login handles user login
func (h *UserHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, bindingErrorDetails(err))
		return
	}

	tokens, err := h.accountSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// Verify handles account activation. A wrong code on a not-yet-active account
// destroys it; the caller must register again.
func (h *UserHandlers) Verify(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, bindingErrorDetails(err))
		return
	}

	activated, err := h.accountSvc.Verify(c.Request.Context(), principal.ID, req.OTP)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		return
	}

	if !activated {
		// Business rejection, not a transport error: the request worked, the
		// code was wrong and the account may be gone
		c.JSON(http.StatusOK, gin.H{"error": "Otp is not correct"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activated successfully"})
}

// MyInfo handles getting the authenticated user's profile
func (h *UserHandlers) MyInfo(c *gin.Context) {
	principal, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated"})
		return
	}

	user, err := h.accountSvc.Profile(c.Request.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"surname": user.Surname,
		"email":   user.Email,
		"age":     user.Age,
		"image":   user.Image,
	})
}
