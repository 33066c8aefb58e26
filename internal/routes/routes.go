package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-booking-server/internal/config"
	"clinic-booking-server/internal/handlers"
	"clinic-booking-server/internal/middleware"
	"clinic-booking-server/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, users store.UserStore, appointments store.AppointmentStore, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(users, cfg)
	appointmentHandler := handlers.NewAppointmentHandler(appointments)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Base endpoint running")
	})

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)

	// The only token-protected route; everything else is public.
	router.GET("/me", middleware.AuthMiddleware(cfg), authHandler.Profile)

	appointmentRoutes := router.Group("/appointments")
	{
		appointmentRoutes.GET("", appointmentHandler.List)
		appointmentRoutes.POST("", appointmentHandler.Create)
		appointmentRoutes.GET("/search", appointmentHandler.Search)
		appointmentRoutes.PATCH("/:id", appointmentHandler.Update)
		appointmentRoutes.DELETE("/:id", appointmentHandler.Delete)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})
}
