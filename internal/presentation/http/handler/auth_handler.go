package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Jesus1025/ventas-api/internal/application/service"
	"github.com/Jesus1025/ventas-api/internal/presentation/http/dto/request"
	"github.com/Jesus1025/ventas-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles operator login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	out, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", out)
}

// Me returns the identity pair carried by the validated token.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := GetUserID(c)
	if userID == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	response.OK(c, "Profile retrieved successfully", gin.H{
		"username": userID,
		"name":     GetUserName(c),
	})
}
