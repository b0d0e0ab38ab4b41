package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/joshbuilds/portfolio-api/auth"
	"github.com/joshbuilds/portfolio-api/config"
	"github.com/joshbuilds/portfolio-api/database"
	"github.com/joshbuilds/portfolio-api/handlers"
	"github.com/joshbuilds/portfolio-api/middleware"
	"github.com/joshbuilds/portfolio-api/store"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.Load()

	// --- Initialize the data directory and flat-file stores ---
	files, err := database.NewFilesClient(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize data directory: %v", err)
	}

	analyticsStore, err := store.NewAnalyticsStore(files)
	if err != nil {
		log.Fatalf("Failed to initialize analytics store: %v", err)
	}
	projectStore, err := store.NewProjectStore(files)
	if err != nil {
		log.Fatalf("Failed to initialize project store: %v", err)
	}
	siteStore, err := store.NewSiteStore(files)
	if err != nil {
		log.Fatalf("Failed to initialize site settings store: %v", err)
	}

	// --- Session gate and handlers ---
	gate := auth.NewSessionGate()

	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsStore)
	authHandlers := handlers.NewAuthHandlers(gate, cfg)
	projectHandlers := handlers.NewProjectHandlers(projectStore)
	siteHandlers := handlers.NewSiteHandlers(siteStore)
	uploadHandlers := handlers.NewUploadHandlers(files)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.FrontendOrigin))

	// Serve uploaded images
	r.Static("/api/uploads", files.UploadsDir)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/analytics/track", analyticsHandlers.Track)

		api.POST("/auth/login", authHandlers.Login)
		api.GET("/auth/verify", authHandlers.Verify)
		api.POST("/auth/logout", authHandlers.Logout)

		api.GET("/projects", projectHandlers.List)
		api.GET("/projects/:id", projectHandlers.Get)
		api.GET("/site-settings", siteHandlers.Get)

		// Protected routes (require a live admin session)
		protected := api.Group("/")
		protected.Use(middleware.RequireAuth(gate))
		{
			protected.GET("/analytics/data", analyticsHandlers.GetData)

			protected.POST("/projects", projectHandlers.Create)
			protected.PUT("/projects/reorder", projectHandlers.Reorder)
			protected.PUT("/projects/:id", projectHandlers.Update)
			protected.DELETE("/projects/:id", projectHandlers.Delete)
			protected.POST("/projects/upload", uploadHandlers.UploadImage)

			protected.PUT("/site-settings", siteHandlers.Update)
			protected.POST("/site-settings/upload", uploadHandlers.UploadImage)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Portfolio API server starting on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Portfolio API server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
