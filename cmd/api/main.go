// @title SkillSwap Hub API
// @version 1.0
// @description Skill verification for the SkillSwap Hub marketplace.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "skillswap-hub/cmd/api/docs"
	"skillswap-hub/internal/adapter"
	"skillswap-hub/internal/adapter/evaluator"
	"skillswap-hub/internal/adapter/github"
	"skillswap-hub/internal/cache"
	"skillswap-hub/internal/config"
	"skillswap-hub/internal/database"
	"skillswap-hub/internal/domain"
	"skillswap-hub/internal/handler"
	"skillswap-hub/internal/logger"
	"skillswap-hub/internal/middleware"
	"skillswap-hub/internal/repository"
	"skillswap-hub/internal/service"
	"skillswap-hub/internal/taxonomy"
	"skillswap-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	tax, err := taxonomy.Default()
	if err != nil {
		appLogger.Fatal("Failed to load skill taxonomy", zap.Error(err))
	}

	// Portfolio review falls back to manual review when no LLM is configured
	var reviewer domain.PortfolioReviewer
	if cfg.LLM.Enabled {
		reviewer, err = evaluator.NewOllamaPortfolioReviewer(cfg.LLM.Server, cfg.LLM.Model, cfg.LLM.Timeout)
		if err != nil {
			appLogger.Fatal("Failed to create portfolio reviewer", zap.Error(err))
		}
		appLogger.Info("Ollama portfolio reviewer initialized", zap.String("server_url", cfg.LLM.Server), zap.String("model", cfg.LLM.Model))
	}

	// Connect to database
	db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	skillRecordRepository := repository.NewSkillRecordDatabaseAdapter(db)

	// Initialize Redis Client
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize services
	githubClient := github.NewClientFromConfig(cfg.GitHub)
	verificationService := service.NewVerificationService(tax, githubClient, reviewer, cfg.Batch.Concurrency)
	quizSessionService := service.NewQuizSessionService(verificationService, cacheAdapter, cfg.Quiz.SessionTTL)
	profileService := service.NewProfileService(tax)
	skillRecordService := service.NewSkillRecordService(skillRecordRepository, verificationService, quizSessionService, profileService)

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	appLogger.Info("Services initialized")

	// Initialize handlers
	validator := validation.NewValidator()
	skillHandler := handler.NewSkillHandler(verificationService, validator, service.NewRequestTracker())
	quizHandler := handler.NewQuizHandler(quizSessionService, validator)
	skillRecordHandler := handler.NewSkillRecordHandler(skillRecordService, validator)
	authHandler := handler.NewAuthHandler(authService, validator)
	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		"database": skillRecordRepository,
		"cache":    cacheAdapter,
	})

	app := fiber.New(fiber.Config{
		AppName:      "SkillSwap Hub",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	healthHandler.RegisterRoutes(app)

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	skillHandler.RegisterRoutes(api, authService)
	quizHandler.RegisterRoutes(api, authService)
	skillRecordHandler.RegisterRoutes(api, authService)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		appLogger.Info("Starting server", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exiting")
}
