package handlers

import (
	"errors"
	"log"
	"net/http"

	"temp_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input services.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := h.authService.Login(&input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fail(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("Error login: %v", err)
		fail(c, http.StatusInternalServerError, "Error logging in")
		return
	}

	success(c, "Login successful", result)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.authService.Register(&input)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			fail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Printf("Error register: %v", err)
		fail(c, http.StatusInternalServerError, "Error registering user")
		return
	}

	success(c, "Registration successful", user)
}
