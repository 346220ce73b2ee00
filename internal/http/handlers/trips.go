package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelmitr/internal/domain"
	"travelmitr/internal/services"
)

type optimizeRequest struct {
	SourceID      flexID   `json:"source_id"`
	DestID        flexID   `json:"dest_id"`
	SourceText    string   `json:"source_text"`
	DestText      string   `json:"dest_text"`
	CostWeight    *float64 `json:"cost_weight"`
	TimeWeight    *float64 `json:"time_weight"`
	ComfortWeight *float64 `json:"comfort_weight"`
}

type optimizeResponse struct {
	Message string `json:"message"`
	services.OptimizeResult
}

// POST /api/trips/optimize
func (h *Handler) OptimizeTrip(c *gin.Context) {
	var req optimizeRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	res, err := h.trips(c).Optimize(c.Request.Context(), userID(c), services.OptimizeInput{
		SourceID:   domain.ID(req.SourceID),
		DestID:     domain.ID(req.DestID),
		SourceText: req.SourceText,
		DestText:   req.DestText,
		Weights:    domain.WeightsOrDefault(req.CostWeight, req.TimeWeight, req.ComfortWeight),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, optimizeResponse{Message: "Optimized route generated successfully", OptimizeResult: res})
}

// GET /api/trips
func (h *Handler) ListTrips(c *gin.Context) {
	trips, err := h.trips(c).ListTrips(c.Request.Context(), userID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}

// GET /api/trips/:id
func (h *Handler) GetTrip(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	trip, err := h.trips(c).GetTrip(c.Request.Context(), userID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

// DELETE /api/trips/:id
func (h *Handler) DeleteTrip(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := h.trips(c).DeleteTrip(c.Request.Context(), userID(c), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}

// GET /api/trips/:id/itinerary returns the trip as an inline PDF.
func (h *Handler) TripItineraryPDF(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	pdf, filename, err := h.itinerary(c).Generate(c.Request.Context(), userID(c), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
