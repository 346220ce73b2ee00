package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travelmitr/internal/domain"
	"travelmitr/internal/geo"
)

// GET /api/geo/route?from=&to=
func (h *Handler) GeoRoute(c *gin.Context) {
	if h.Geo == nil {
		RespondDomainError(c, domain.NotFoundError{Resource: "geo routing"})
		return
	}
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	if from == "" || to == "" {
		RespondDomainError(c, domain.ValidationError{Msg: "from and to are required"})
		return
	}
	trip, err := h.Geo.Between(c.Request.Context(), from, to)
	if errors.Is(err, geo.ErrNoMatch) {
		RespondDomainError(c, domain.NotFoundError{Resource: "location", Err: err})
		return
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}
