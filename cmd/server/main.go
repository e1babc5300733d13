package main

import (
	"flag"
	"log"
	"strconv"

	"munhub/config"
	"munhub/db"
	"munhub/models"
	"munhub/routes"
	"munhub/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "./config/config.yml", "path to the yaml configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// MongoDB holds the current authoritative copy only; the authority runs
	// from memory when no database is configured.
	if cfg.Database.URI != "" {
		if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		log.Println("Connected to MongoDB")
	} else {
		log.Println("No database configured, running in-memory only")
	}

	services.ConfigureSessions(cfg.Committee.ID, models.SessionConfig{
		GslTime: cfg.Committee.GslTime,
		ModTime: cfg.Committee.ModTime,
	})

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Cors.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Participant-Id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	api := router.Group("/api")
	routes.SetupSessionRoutes(api)

	return router
}
