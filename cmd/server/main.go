package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	billingapp "github.com/societyerp/backend/internal/application/billing"
	importapp "github.com/societyerp/backend/internal/application/import"
	ledgerapp "github.com/societyerp/backend/internal/application/ledger"
	societyapp "github.com/societyerp/backend/internal/application/society"
	"github.com/societyerp/backend/internal/infrastructure/config"
	"github.com/societyerp/backend/internal/infrastructure/documents"
	"github.com/societyerp/backend/internal/infrastructure/logger"
	"github.com/societyerp/backend/internal/infrastructure/persistence"
	"github.com/societyerp/backend/internal/interfaces/http/handler"
	"github.com/societyerp/backend/internal/interfaces/http/middleware"
	"github.com/societyerp/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const documentOutputDir = "documents"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting society billing backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, cfg.Log.Level)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	projectRepo := persistence.NewGormProjectRepository(db.DB)
	unitRepo := persistence.NewGormUnitRepository(db.DB)
	rateRepo := persistence.NewGormRateRepository(db.DB)
	billRepo := persistence.NewGormBillRepository(db.DB)
	letterRepo := persistence.NewGormLetterRepository(db.DB)

	// Transaction scopes
	billingScope := persistence.NewGormBillingTransactionScope(db.DB)
	ledgerScope := persistence.NewGormLedgerTransactionScope(db.DB)
	societyScope := persistence.NewGormSocietyTransactionScope(db.DB)
	importScope := persistence.NewGormImportTransactionScope(db.DB)

	// Document rendering
	renderer, err := documents.NewTemplateRenderer(documents.NewLocalStorage(documentOutputDir))
	if err != nil {
		log.Fatal("Failed to initialize document renderer", zap.Error(err))
	}

	// Application services
	bungalowMultiplier := decimal.NewFromFloat(cfg.Billing.BungalowMultiplier)
	penaltyRate := decimal.NewFromFloat(cfg.Billing.PenaltyAnnualRate)

	projectService := societyapp.NewProjectService(projectRepo)
	unitService := societyapp.NewUnitService(unitRepo, projectRepo)
	cascadeService := societyapp.NewCascadeDeletionService(societyScope, log)
	rateService := billingapp.NewRateService(rateRepo, projectRepo)
	generationService := billingapp.NewBillGenerationService(billingScope, bungalowMultiplier, log)
	penaltyService := billingapp.NewPenaltyAccrualService(billRepo, letterRepo, penaltyRate, log)
	queryService := billingapp.NewDocumentQueryService(billRepo, letterRepo)
	documentService := billingapp.NewDocumentService(renderer, billRepo, letterRepo, projectRepo, unitRepo, log)
	paymentService := ledgerapp.NewPaymentService(ledgerScope, log)
	importService := importapp.NewLedgerImportService(importScope, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	engine.GET("/health", healthHandler(db))

	// Handlers
	projectHandler := handler.NewProjectHandler(projectService, cascadeService)
	unitHandler := handler.NewUnitHandler(unitService, cascadeService)
	rateHandler := handler.NewRateHandler(rateService)
	billHandler := handler.NewBillHandler(generationService, queryService, documentService)
	letterHandler := handler.NewLetterHandler(generationService, queryService, documentService)
	penaltyHandler := handler.NewPenaltyHandler(penaltyService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	importHandler := handler.NewLedgerImportHandler(importService)
	systemHandler := handler.NewSystemHandler()

	// Routes
	projectRoutes := router.NewDomainGroup("projects", "/projects")
	projectRoutes.POST("", projectHandler.Create).
		GET("", projectHandler.List).
		GET("/:id", projectHandler.GetByID).
		PUT("/:id", projectHandler.Update).
		DELETE("/:id", projectHandler.Delete).
		GET("/:id/units", unitHandler.ListByProject).
		GET("/:id/rates", rateHandler.ListByProject).
		GET("/:id/bills", billHandler.ListByProject).
		GET("/:id/letters", letterHandler.ListByProject).
		GET("/:id/payments", paymentHandler.ListByProject).
		POST("/:id/ledger-import", importHandler.Import)

	unitRoutes := router.NewDomainGroup("units", "/units")
	unitRoutes.POST("", unitHandler.Create).
		GET("/:id", unitHandler.GetByID).
		PUT("/:id", unitHandler.Update).
		DELETE("/:id", unitHandler.Delete).
		GET("/:id/bills", billHandler.ListByUnit).
		GET("/:id/letters", letterHandler.ListByUnit).
		GET("/:id/payments", paymentHandler.ListByUnit)

	rateRoutes := router.NewDomainGroup("rates", "/rates")
	rateRoutes.POST("", rateHandler.Create).
		GET("/:id", rateHandler.GetByID).
		DELETE("/:id", rateHandler.Delete)

	billRoutes := router.NewDomainGroup("bills", "/bills")
	billRoutes.POST("/generate", billHandler.Generate).
		GET("/:id", billHandler.GetByID).
		POST("/:id/document", billHandler.Render)

	letterRoutes := router.NewDomainGroup("letters", "/letters")
	letterRoutes.POST("/generate", letterHandler.Generate).
		GET("/:id", letterHandler.GetByID).
		POST("/:id/document", letterHandler.Render)

	penaltyRoutes := router.NewDomainGroup("penalties", "/penalties")
	penaltyRoutes.POST("/sweep", penaltyHandler.Sweep)

	paymentRoutes := router.NewDomainGroup("payments", "/payments")
	paymentRoutes.POST("", paymentHandler.Record).
		DELETE("/:id", paymentHandler.Delete).
		POST("/bulk-delete", paymentHandler.BulkDelete).
		GET("/:id/receipt", paymentHandler.GetReceipt)

	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/ping", systemHandler.Ping).
		GET("/info", systemHandler.GetSystemInfo)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(projectRoutes).
		Register(unitRoutes).
		Register(rateRoutes).
		Register(billRoutes).
		Register(letterRoutes).
		Register(penaltyRoutes).
		Register(paymentRoutes).
		Register(systemRoutes)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports liveness of the service and its database
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
