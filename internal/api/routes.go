package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitfx-backend-go/internal/config"
	"fitfx-backend-go/internal/core"
	"fitfx-backend-go/internal/db"
	"fitfx-backend-go/internal/middleware"
)

// SetupRoutes configures all the application routes with their handlers and
// middleware. Global middleware (Logging, Recovery, CORS) are applied to the
// router instance before this function is called, in main.go.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	userService core.UserService,
	subscriptionService core.SubscriptionService,
	wardrobeService core.WardrobeService,
	calendarService core.CalendarService,
	stylistService core.StylistService,
	billingService core.BillingService,
) {
	// --- Initialize Middleware requiring dependencies ---
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("Firebase Auth client is not initialized; routes cannot be secured")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	// --- Initialize Handlers ---
	authHandler := NewAuthHandler(userService)
	userHandler := NewUserHandler(userService)
	subscriptionHandler := NewSubscriptionHandler(subscriptionService)
	wardrobeHandler := NewWardrobeHandler(wardrobeService)
	calendarHandler := NewCalendarHandler(calendarService)
	stylistHandler := NewStylistHandler(stylistService)
	billingHandler := NewBillingHandler(billingService, appConfig.PaymentWebhookSecret)

	apiV1 := router.Group("/api/v1")
	{
		// --- User and Authentication Endpoints ---
		usersGroup := apiV1.Group("/users")
		{
			// Called after client-side Firebase login/signup to ensure the
			// backend profile exists.
			usersGroup.POST("/initialize", authMW.VerifyToken(), authHandler.InitializeUserProfile)
			usersGroup.GET("/me", authMW.VerifyToken(), userHandler.GetCurrentUserProfile)
			usersGroup.PATCH("/me", authMW.VerifyToken(), userHandler.UpdateCurrentUserProfile)
		}

		// --- Subscription Endpoints ---
		subscriptionGroup := apiV1.Group("/subscription", authMW.VerifyToken())
		{
			subscriptionGroup.GET("", subscriptionHandler.GetSubscriptionStatus)
			subscriptionGroup.GET("/features", subscriptionHandler.GetFeatureAccess)
		}

		// --- Wardrobe Endpoints ---
		wardrobeGroup := apiV1.Group("/wardrobe", authMW.VerifyToken())
		{
			wardrobeGroup.GET("", wardrobeHandler.ListWardrobe)
			wardrobeGroup.GET("/status", wardrobeHandler.GetWardrobeStatus)
			wardrobeGroup.POST("", wardrobeHandler.AddGarment)
			wardrobeGroup.PUT("/:garmentId", wardrobeHandler.UpdateGarment)
			wardrobeGroup.DELETE("/:garmentId", wardrobeHandler.DeleteGarment)
		}

		// --- Calendar Endpoints ---
		calendarGroup := apiV1.Group("/calendar", authMW.VerifyToken())
		{
			calendarGroup.GET("/:year/:month", calendarHandler.GetMonth)
			calendarGroup.PUT("/days/:date", calendarHandler.SaveOverride)
		}

		// --- Stylist Endpoints ---
		stylistGroup := apiV1.Group("/stylist", authMW.VerifyToken())
		{
			stylistGroup.POST("/outfits", stylistHandler.GetPersonalizedOutfits)
			stylistGroup.POST("/colors", stylistHandler.GetColorSuggestions)
		}

		// --- Billing Endpoints ---
		billingGroup := apiV1.Group("/billing")
		{
			billingGroup.GET("/plans", billingHandler.ListPlans)
			billingGroup.POST("/cancel", authMW.VerifyToken(), billingHandler.CancelSubscription)

			// Public webhook endpoint for the payment provider (no user
			// token). The provider authenticates via the shared secret
			// header, checked in the handler.
			billingGroup.POST("/webhooks/payment", billingHandler.HandlePaymentWebhook)
		}
	}

	// --- General Health Check Endpoint ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
