package routes

import (
	"net/http"
	"time"

	"github.com/voueil/Herafona-website/handlers"
	"github.com/voueil/Herafona-website/middleware"
	"github.com/voueil/Herafona-website/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the login, register, logout and password-reset
// endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/forgot-password", hb.Auth.ForgotPasswordHandler)

		api.POST("/logout", middleware.SessionAuthMiddleware(hb.UserRepo), hb.Auth.LogoutHandler)
	}
}

// RegisterProfileRoutes registers the profile page endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Profile.GetProfileHandler)
		api.PUT("", hb.Profile.UpdateProfileHandler)
	}
}

// RegisterExperienceRoutes registers the catalog endpoints. Browsing is
// public; adding a listing is exposed only to artisan accounts.
func RegisterExperienceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/experiences")
	{
		api.GET("", hb.Experience.ListExperiencesHandler)
		api.GET("/stream", hb.Experience.StreamExperiencesHandler)

		api.POST("",
			middleware.SessionAuthMiddleware(hb.UserRepo),
			middleware.RequireAccountType(models.AccountArtisan),
			hb.Experience.CreateExperienceHandler)
	}
}

// RegisterBookingRoutes registers the reservations and checkout endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.UserRepo))
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/stream", hb.Booking.StreamBookingsHandler)
		api.POST("", hb.Booking.CreateBookingHandler)

		api.PATCH("/:id/status",
			middleware.RequireAccountType(models.AccountArtisan),
			hb.Booking.UpdateBookingStatusHandler)
	}
}

// RegisterAssistantRoutes registers the chat widget configuration endpoint.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/assistant/config", hb.Assistant.WidgetConfigHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Herafona"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterExperienceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterHealthRoute(r)
}
