package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nutrilog/nutrilog-backend/internal/handlers"
	"github.com/nutrilog/nutrilog-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler        *handlers.AuthHandler
	AuthMiddleware     *middleware.AuthMiddleware
	UserHandler        *handlers.UserHandler
	SupplementHandler  *handlers.SupplementHandler
	IntakeHandler      *handlers.IntakeHandler
	SymptomHandler     *handlers.SymptomHandler
	InteractionHandler *handlers.InteractionHandler
	AnalyticsHandler   *handlers.AnalyticsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	api := router.Group("/api")
	{
		api.POST("/register", cfg.AuthHandler.Register)
		api.POST("/login", cfg.AuthHandler.Login)
	}

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// User
	protected.GET("/user", cfg.UserHandler.GetMe)
	// Supplements
	protected.POST("/supplements", cfg.SupplementHandler.Create)
	protected.GET("/supplements", cfg.SupplementHandler.List)
	protected.GET("/supplements/:id", cfg.SupplementHandler.Get)
	protected.PUT("/supplements/:id", cfg.SupplementHandler.Update)
	protected.DELETE("/supplements/:id", cfg.SupplementHandler.Delete)
	// Intake logs
	protected.POST("/intakes", cfg.IntakeHandler.Create)
	protected.GET("/intakes", cfg.IntakeHandler.List)
	protected.DELETE("/intakes/:id", cfg.IntakeHandler.Delete)
	// Symptom logs
	protected.POST("/symptoms", cfg.SymptomHandler.Create)
	protected.GET("/symptoms", cfg.SymptomHandler.List)
	protected.DELETE("/symptoms/:id", cfg.SymptomHandler.Delete)
	// Interaction rule catalog
	protected.GET("/interactions/rules", cfg.InteractionHandler.ListRules)
	protected.POST("/interactions/rules", cfg.InteractionHandler.CreateRule)
	// Analytics
	protected.GET("/analytics/report", cfg.AnalyticsHandler.GetReport)
	protected.GET("/analytics/streaks", cfg.AnalyticsHandler.GetStreaks)
	protected.GET("/analytics/progress", cfg.AnalyticsHandler.GetProgress)
	protected.GET("/analytics/correlations", cfg.AnalyticsHandler.GetCorrelations)
	protected.GET("/analytics/recommendations", cfg.AnalyticsHandler.GetRecommendations)
	protected.POST("/analytics/interactions", cfg.AnalyticsHandler.CheckInteractions)

	return router
}
