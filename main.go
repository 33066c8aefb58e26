package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"clinic-booking-server/internal/config"
	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/routes"
	"clinic-booking-server/internal/store"
)

func main() {
	// Load environment variables; a missing .env file is fine
	_ = godotenv.Load()

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize database connection. A failed connection is logged but does
	// not stop the server: requests that need the database answer 500 until
	// it is reachable again.
	db, err := models.InitDB(models.DatabaseConfig{DSN: cfg.Database.DSN})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
	} else {
		log.Println("Database connection successful")
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS: all origins permitted
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes with explicitly injected stores
	routes.SetupRoutes(router, store.NewUserStore(db), store.NewAppointmentStore(db), cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
