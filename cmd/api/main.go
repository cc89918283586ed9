package main

import (
	"html/template"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/justsurfingit/job-board/internal/config"
	"github.com/justsurfingit/job-board/internal/handlers"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/justsurfingit/job-board/web"
)

func main() {
	// 1. Load Environment Variables (a missing .env is fine in deployment)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using the process environment")
	}

	// 2. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// 3. Initialize Core Services (Dependencies)
	upstreamService := services.NewUpstreamService(cfg.UpstreamURL, cfg.UpstreamTimeout)
	listingService := services.NewListingService()

	// 4. Initialize Handlers
	jobHandler := handlers.NewJobHandler(upstreamService)
	listingHandler := handlers.NewListingHandler(upstreamService, listingService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	// 6. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Jobs proxy
		api.POST("/jobs/search", jobHandler.SearchJobs)
	}

	// Listing page + view actions
	r.GET("/", listingHandler.ShowListings)
	r.POST("/view/reset", listingHandler.ResetFilters)
	r.POST("/view/recent", listingHandler.FilterRecent)
	r.POST("/view/sort", listingHandler.ToggleSort)
	r.GET("/open", listingHandler.OpenListing)

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
