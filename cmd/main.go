package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/nutrilog/nutrilog-backend/internal/db"
	"github.com/nutrilog/nutrilog-backend/internal/handlers"
	"github.com/nutrilog/nutrilog-backend/internal/logger"
	"github.com/nutrilog/nutrilog-backend/internal/middleware"
	"github.com/nutrilog/nutrilog-backend/internal/repos"
	"github.com/nutrilog/nutrilog-backend/internal/server"
	"github.com/nutrilog/nutrilog-backend/internal/services"
	"github.com/nutrilog/nutrilog-backend/internal/utils"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	supplementRepo := repos.NewSupplementRepo(thePG, log)
	intakeLogRepo := repos.NewIntakeLogRepo(thePG, log)
	symptomLogRepo := repos.NewSymptomLogRepo(thePG, log)
	interactionRuleRepo := repos.NewInteractionRuleRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo)
	supplementService := services.NewSupplementService(thePG, log, supplementRepo)
	intakeService := services.NewIntakeService(thePG, log, intakeLogRepo, supplementRepo)
	symptomService := services.NewSymptomService(thePG, log, symptomLogRepo)
	interactionService := services.NewInteractionService(thePG, log, interactionRuleRepo)
	analyticsService := services.NewAnalyticsService(thePG, log, intakeLogRepo, symptomLogRepo, supplementRepo, interactionRuleRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	supplementHandler := handlers.NewSupplementHandler(supplementService)
	intakeHandler := handlers.NewIntakeHandler(intakeService)
	symptomHandler := handlers.NewSymptomHandler(symptomService)
	interactionHandler := handlers.NewInteractionHandler(interactionService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:        authHandler,
		AuthMiddleware:     authMiddleware,
		UserHandler:        userHandler,
		SupplementHandler:  supplementHandler,
		IntakeHandler:      intakeHandler,
		SymptomHandler:     symptomHandler,
		InteractionHandler: interactionHandler,
		AnalyticsHandler:   analyticsHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Warn("Server failed", "error", err)
	}
}
