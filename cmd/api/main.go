package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jesus1025/ventas-api/internal/application/service"
	"github.com/Jesus1025/ventas-api/internal/config"
	"github.com/Jesus1025/ventas-api/internal/infrastructure/database"
	"github.com/Jesus1025/ventas-api/internal/infrastructure/repository"
	"github.com/Jesus1025/ventas-api/internal/presentation/http/handler"
	"github.com/Jesus1025/ventas-api/internal/presentation/http/routes"
	"github.com/Jesus1025/ventas-api/pkg/clock"
	"github.com/Jesus1025/ventas-api/pkg/report"
	"github.com/Jesus1025/ventas-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode and logger based on environment
	var logger *zap.Logger
	var err error
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	saleRepo := repository.NewSaleRepository(db)

	// Initialize services
	clk := clock.System()
	authService := service.NewAuthService(cfg.Users, jwtManager, logger)
	saleService := service.NewSaleService(saleRepo, clk, logger)
	reportService := service.NewReportService(saleRepo, report.NewGenerator(), clk, logger)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:   handler.NewAuthHandler(authService),
		Sale:   handler.NewSaleHandler(saleService),
		Report: handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Logger:     logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.Info("Starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
	)

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
