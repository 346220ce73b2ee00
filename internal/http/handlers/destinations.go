package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelmitr/internal/domain/models"
)

// GET /api/destinations
func (h *Handler) ListDestinations(c *gin.Context) {
	out, err := h.destinations(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": out})
}

// GET /api/destinations/search?q=
func (h *Handler) SearchDestinations(c *gin.Context) {
	out, err := h.destinations(c).Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destinations": out})
}

// GET /api/destinations/:id
func (h *Handler) GetDestination(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	d, err := h.destinations(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"destination": d})
}

// POST /api/destinations
func (h *Handler) CreateDestination(c *gin.Context) {
	var req models.DestinationInput
	if !BindJSONOrError(c, &req) {
		return
	}
	id, err := h.destinations(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Destination created successfully", "destId": id})
}
