package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelmitr/internal/services"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := h.auth(c).Register(c.Request.Context(), services.RegisterInput(req))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "token": res.Token, "user": res.User})
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := h.auth(c).Login(c.Request.Context(), services.LoginInput(req))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": res.Token, "user": res.User})
}

// GET /api/auth/profile
func (h *Handler) GetProfile(c *gin.Context) {
	u, err := h.auth(c).Profile(c.Request.Context(), userID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// PUT /api/auth/profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	u, err := h.auth(c).UpdateProfile(c.Request.Context(), userID(c), services.ProfileInput(req))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "user": u})
}
