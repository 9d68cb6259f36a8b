package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inventa-app/inventa-api/internal/application/service"
	"github.com/inventa-app/inventa-api/internal/config"
	"github.com/inventa-app/inventa-api/internal/infrastructure/database"
	"github.com/inventa-app/inventa-api/internal/infrastructure/repository"
	"github.com/inventa-app/inventa-api/internal/presentation/http/handler"
	"github.com/inventa-app/inventa-api/internal/presentation/http/routes"
	"github.com/inventa-app/inventa-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.App.Name,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	clientRepo := repository.NewClientRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo, categoryRepo, supplierRepo)
	categoryService := service.NewCategoryService(categoryRepo, productRepo, analyticsRepo)
	clientService := service.NewClientService(clientRepo, saleRepo, analyticsRepo)
	supplierService := service.NewSupplierService(supplierRepo, productRepo, purchaseRepo, analyticsRepo)
	purchaseService := service.NewPurchaseService(txManager, purchaseRepo, supplierRepo, analyticsRepo)
	saleService := service.NewSaleService(txManager, saleRepo, clientRepo, analyticsRepo)
	reportService := service.NewReportService(analyticsRepo, productRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Product:  handler.NewProductHandler(productService, cfg.Inventory.LowStockThreshold),
		Category: handler.NewCategoryHandler(categoryService),
		Client:   handler.NewClientHandler(clientService, saleService),
		Supplier: handler.NewSupplierHandler(supplierService, purchaseService),
		Purchase: handler.NewPurchaseHandler(purchaseService),
		Sale:     handler.NewSaleHandler(saleService),
		Report:   handler.NewReportHandler(reportService, cfg.Inventory.LowStockThreshold),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	logrus.WithField("port", cfg.App.Port).Info("Starting server")
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
