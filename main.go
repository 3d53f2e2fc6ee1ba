package main

import (
	"log"

	"deals-backend/config"
	"deals-backend/database"
	"deals-backend/handlers"
	"deals-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()

	if err := database.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := database.LoadDealData(cfg.DealDataPath); err != nil {
		log.Printf("Deal data load skipped: %v", err)
	}

	llmService := services.NewLLMService(cfg)
	feedService := services.NewFeedService(cfg)
	eventService := services.NewEventService(cfg)
	locationService := services.NewLocationService(cfg, services.NewIPAPILocator(cfg))

	dealHandler := handlers.NewDealHandler(feedService, eventService, llmService, locationService, cfg)
	mapHandler := handlers.NewMapHandler(feedService, locationService, cfg)
	locationHandler := handlers.NewLocationHandler(locationService)

	r := gin.Default()
	r.Use(cors.Default())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", dealHandler.HealthCheck)
		v1.GET("/categories", dealHandler.GetCategories)

		v1.GET("/deals/feed", dealHandler.GetFeed)
		v1.GET("/deals/spotlight", dealHandler.GetSpotlight)
		v1.GET("/deals/stats", dealHandler.GetStats)
		v1.GET("/deals/:id", dealHandler.GetDealByID)

		v1.GET("/map/pins", mapHandler.GetPins)
		v1.GET("/map/viewport", mapHandler.GetViewport)

		v1.POST("/events", dealHandler.RecordEvent)

		v1.GET("/location", locationHandler.GetState)
		v1.POST("/location/activate", locationHandler.Activate)
		v1.POST("/location/deactivate", locationHandler.Deactivate)
	}

	log.Printf("Starting deals-backend on port %s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
