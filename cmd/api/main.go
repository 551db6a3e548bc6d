package main

import (
	"context"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/sridharvel/annapoorna-pos/internal/application/service"
	"github.com/sridharvel/annapoorna-pos/internal/config"
	"github.com/sridharvel/annapoorna-pos/internal/infrastructure/database"
	"github.com/sridharvel/annapoorna-pos/internal/infrastructure/repository"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/handler"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/middleware"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/routes"
	"github.com/sridharvel/annapoorna-pos/pkg/printer"
	"github.com/sridharvel/annapoorna-pos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if cfg.App.Debug {
		log.SetLevel(log.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the shop database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("Failed to open database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed a starter menu on first run
	if err := database.SeedSampleItems(db); err != nil {
		log.WithError(err).Warn("Failed to seed sample items")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	// Initialize repositories
	itemRepo := repository.NewItemRepository(db)
	billRepo := repository.NewBillRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	creditRepo := repository.NewCreditRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Sweep stale idempotency keys so the table does not grow unbounded
	go middleware.IdempotencyCleanup(context.Background(), idempotencyRepo, middleware.IdempotencyCleanupInterval)

	// Initialize services
	authService, err := service.NewAuthService(cfg.Auth.PIN, jwtManager)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize auth service")
	}
	catalogService := service.NewCatalogService(itemRepo)
	billingService := service.NewBillingService(billRepo, itemRepo, creditRepo)
	expenseService := service.NewExpenseService(expenseRepo)
	creditService := service.NewCreditService(creditRepo)
	reportService := service.NewReportService(reportRepo, expenseRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.WithError(err).Warn("Failed to initialize printer, receipts disabled")
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, billRepo, cfg.App.Name, cfg.Printer.Type, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Item:    handler.NewItemHandler(catalogService),
		Bill:    handler.NewBillHandler(billingService),
		Expense: handler.NewExpenseHandler(expenseService),
		Credit:  handler.NewCreditHandler(creditService, reportService),
		Report:  handler.NewReportHandler(reportService),
		Printer: handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8090"
	}

	log.WithFields(log.Fields{
		"service": cfg.App.Name,
		"env":     cfg.App.Env,
		"port":    port,
	}).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
