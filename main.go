// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/voueil/Herafona-website/config"
	"github.com/voueil/Herafona-website/database"
	bookingRepoPkg "github.com/voueil/Herafona-website/database/repository/booking"
	experienceRepoPkg "github.com/voueil/Herafona-website/database/repository/experience"
	userRepoPkg "github.com/voueil/Herafona-website/database/repository/user"
	"github.com/voueil/Herafona-website/handlers"
	"github.com/voueil/Herafona-website/middleware"
	"github.com/voueil/Herafona-website/routes"
	"github.com/voueil/Herafona-website/services/auth"
	"github.com/voueil/Herafona-website/services/booking"
	"github.com/voueil/Herafona-website/services/catalog"
	"github.com/voueil/Herafona-website/services/profile"
	"github.com/voueil/Herafona-website/services/storage"
	"github.com/voueil/Herafona-website/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.FirebaseInit()

	uploader, err := storage.NewCloudinaryUploader(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryUploadPreset,
		config.AppConfig.CloudinaryFolder,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary uploader: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.LanguageMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	experienceRepo := experienceRepoPkg.NewMongoExperienceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	bridge := auth.NewFirebaseBridge(utils.GetFirebaseAuth(), config.AppConfig.FirebaseWebAPIKey)
	profileService := &profile.DefaultProfileService{Repo: userRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: experienceRepo, Uploader: uploader}
	bookingService := &booking.DefaultBookingService{Repo: bookingRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		Auth:       handlers.NewAuthHandler(bridge, profileService),
		Profile:    handlers.NewProfileHandler(profileService),
		Experience: handlers.NewExperienceHandler(catalogService),
		Booking:    handlers.NewBookingHandler(bookingService, catalogService),
		Assistant:  handlers.NewAssistantHandler(),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
