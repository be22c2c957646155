package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asset-management-service/internal/adapters/primary/http/handlers"
	"asset-management-service/internal/adapters/primary/http/middleware"
	"asset-management-service/internal/adapters/secondary/gemini"
	"asset-management-service/internal/adapters/secondary/graph"
	"asset-management-service/internal/adapters/secondary/postgres"
	"asset-management-service/internal/config"
	output "asset-management-service/internal/core/ports/output"
	"asset-management-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Create database pool
	poolCfg, err := pgxpool.ParseConfig(cfg.Database.DSN())
	if err != nil {
		log.Fatalf("parse db config: %v", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Database.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.Database.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("create db pool: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("ping db: %v", err)
	}
	log.Info("database connection established")

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports - Repositories)
	tradeRepo := postgres.NewTradeRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	valuationRepo := postgres.NewValuationRepository(pool)
	assumptionRepo := postgres.NewAssumptionRepository(pool)
	outcomeRepo := postgres.NewOutcomeRepository(pool)
	servicerRepo := postgres.NewServicerRecordRepository(pool)
	extractionRepo := postgres.NewExtractionJobRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	calendarRepo := postgres.NewCalendarEventRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)

	// Microsoft Graph Client (Optional - based on config)
	var graphClient output.GraphClient
	if cfg.Graph.Enabled {
		graphClient = graph.NewGraphClient(&cfg.Graph)
		log.Info("Microsoft Graph client initialized")
	} else {
		log.Info("SharePoint integration disabled")
	}

	// Gemini Document Extractor (Optional - based on config)
	var extractor output.DocumentExtractor
	if cfg.Gemini.Enabled {
		client, err := gemini.NewDocumentExtractor(context.Background(), &cfg.Gemini)
		if err != nil {
			log.Warnf("Gemini client init failed (continuing without document extraction): %v", err)
		} else {
			extractor = client
			log.Info("Gemini document extractor initialized")
		}
	} else {
		log.Info("Document extraction disabled")
	}

	// Core Services (Application Layer)
	tradeSvc := services.NewTradeService(tradeRepo)
	assetSvc := services.NewAssetService(assetRepo, tradeRepo)
	valuationSvc := services.NewValuationService(valuationRepo, assetRepo)
	assumptionSvc := services.NewAssumptionService(assumptionRepo, assetRepo)
	outcomeSvc := services.NewOutcomeService(outcomeRepo, assetRepo, valuationRepo, assumptionSvc, cfg.Financial.IRRFloor, cfg.Financial.IRRCap)
	servicingSvc := services.NewServicingService(servicerRepo, assetRepo)
	extractionSvc := services.NewExtractionService(extractionRepo, assetRepo, extractor)
	sharepointSvc := services.NewSharePointService(tradeRepo, assetRepo, graphClient)
	taskSvc := services.NewTaskService(taskRepo, assetRepo, outcomeRepo)
	calendarSvc := services.NewCalendarService(calendarRepo, assetRepo)
	contactSvc := services.NewContactService(contactRepo)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(tradeSvc, assetSvc, valuationSvc, assumptionSvc, outcomeSvc, servicingSvc, extractionSvc, sharepointSvc, taskSvc, calendarSvc, contactSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/asset-mgmt")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
