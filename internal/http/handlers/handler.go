package handlers

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"travelmitr/internal/domain"
	"travelmitr/internal/geo"
	"travelmitr/internal/http/middleware"
	"travelmitr/internal/services"
)

// Handler holds what the HTTP layer needs to build services per request.
type Handler struct {
	DB     *sql.DB
	Tokens services.Tokens
	// Geo is nil when geo helpers are disabled.
	Geo *geo.Client

	router *gin.Engine
}

// SetRouter stores the active gin engine for /api/routes.
func (h *Handler) SetRouter(r *gin.Engine) { h.router = r }

func (h *Handler) trips(c *gin.Context) services.TripService {
	return services.NewTripService(h.DB, middleware.GetRequestID(c))
}

func (h *Handler) auth(c *gin.Context) services.AuthService {
	return services.NewAuthService(h.DB, h.Tokens, middleware.GetRequestID(c))
}

func (h *Handler) destinations(c *gin.Context) services.DestinationService {
	return services.NewDestinationService(h.DB, middleware.GetRequestID(c))
}

func (h *Handler) itinerary(c *gin.Context) services.ItineraryService {
	return services.NewItineraryService(h.DB, middleware.GetRequestID(c))
}

func userID(c *gin.Context) domain.ID { return middleware.GetUserID(c) }
