package api

import (
	"log/slog"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "travelmitr/internal/config"
	h "travelmitr/internal/http/handlers"
	"travelmitr/internal/http/middleware"
	"travelmitr/internal/metrics"
)

// NewRouter mounts every route. limiter guards the optimize endpoint; the
// caller owns it and must Stop it on shutdown.
func NewRouter(env intconfig.Env, hd *h.Handler, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Metrics(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		slog.Warn("failed to set trusted proxies", "error", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"code":   "not_found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	requireAuth := middleware.RequireAuth(hd.Tokens, h.RespondDomainError)

	api := r.Group("/api")
	{
		api.GET("/health", hd.Health)
		api.GET("/db-check", hd.DBCheck)
		api.GET("/routes", hd.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", hd.Register)
		auth.POST("/login", hd.Login)
		auth.GET("/profile", requireAuth, hd.GetProfile)
		auth.PUT("/profile", requireAuth, hd.UpdateProfile)

		// Trips
		trips := api.Group("/trips", requireAuth)
		trips.POST("/optimize", limiter.Handler(h.RespondDomainError), hd.OptimizeTrip)
		trips.GET("", hd.ListTrips)
		trips.GET("/:id", hd.GetTrip)
		trips.DELETE("/:id", hd.DeleteTrip)
		trips.GET("/:id/itinerary", hd.TripItineraryPDF)

		// Destinations
		destinations := api.Group("/destinations", requireAuth)
		destinations.GET("", hd.ListDestinations)
		destinations.GET("/search", hd.SearchDestinations)
		destinations.GET("/:id", hd.GetDestination)
		destinations.POST("", hd.CreateDestination)

		// Geo helpers
		api.GET("/geo/route", requireAuth, hd.GeoRoute)
	}

	hd.SetRouter(r)
	return r
}
