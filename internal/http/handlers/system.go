package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelmitr/internal/repositories"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Travel Mitr API is running"})
}

func (h *Handler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "storage_error", "database not connected")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		respondError(c, http.StatusInternalServerError, "storage_error", "database ping failed")
		return
	}
	n, err := repositories.DestinationRepository{DB: h.DB}.Count(ctx)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "destinations_in_db": n})
}

func (h *Handler) Routes(c *gin.Context) {
	if h.router == nil {
		respondError(c, http.StatusServiceUnavailable, "internal_error", "router not ready")
		return
	}
	routes := h.router.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
