package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "costr/api/swagger" // swagger docs
	"costr/internal/config"
	"costr/internal/database"
	"costr/internal/handler"
	"costr/internal/kvstore"
	"costr/internal/logger"
	"costr/internal/middleware"
	"costr/internal/model"
	"costr/internal/report"
	"costr/internal/repository"
	"costr/internal/service"
	"costr/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           CostR API
// @version         1.0
// @description     Invoicing, quotations, customers, inventory and payments for a single business.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := openStore(ctx, cfg, log)
	if err != nil {
		log.WithError(err).WithField("driver", cfg.KVDriver).Fatal("Storage initialisation failed")
	}
	defer func() {
		_ = kv.Close()
	}()
	log.WithField("driver", cfg.KVDriver).Info("Storage ready")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log)
	go wsHub.Run()

	// Set up dependencies (Store -> Service -> Handler)
	onChange := repository.WithChangeHook(wsHub.PublishStorageChange)
	settingsStore := repository.NewSingletonStore(kv, model.KeyAppSettings, model.DefaultSettings, log, onChange)
	documentStore := repository.NewRecordStore[model.Document](kv, model.KeyDocuments, log, onChange)
	customerStore := repository.NewRecordStore[model.Customer](kv, model.KeyCustomers, log, onChange)
	inventoryStore := repository.NewRecordStore[model.InventoryItem](kv, model.KeyInventoryItems, log, onChange)
	paymentStore := repository.NewRecordStore[model.PaymentTransaction](kv, model.KeyPaymentTransactions, log, onChange)

	settingsService := service.NewSettingsService(settingsStore, wsHub)
	documentService := service.NewDocumentService(documentStore, customerStore, settingsService)
	customerService := service.NewCustomerService(customerStore)
	inventoryService := service.NewInventoryService(inventoryStore)
	paymentService := service.NewPaymentService(paymentStore, settingsService)
	statisticsService := service.NewStatisticsService(documentStore, paymentStore, inventoryStore, settingsService)

	// Clients connecting before any settings change still get the stored theme
	wsHub.ApplyTheme(settingsService.Theme())

	// Initialize Handlers
	settingsHandler := handler.NewSettingsHandler(settingsService)
	documentHandler := handler.NewDocumentHandler(documentService)
	customerHandler := handler.NewCustomerHandler(customerService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	statisticsHandler := handler.NewStatisticsHandler(statisticsService)
	exportHandler := handler.NewExportHandler(report.NewExporter(cfg.PhoneRegion),
		documentService, customerService, paymentService, inventoryService)

	// Set up Gin Router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.ExposeHeaders = []string{"Content-Disposition"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "setupComplete": settingsService.IsSetupComplete()})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// API Routing. Settings stay reachable so the first run can complete setup.
	settingsHandler.RegisterRoutes(router.Group(""))
	gated := router.Group("", middleware.RequireSetup(settingsService))
	documentHandler.RegisterRoutes(gated)
	customerHandler.RegisterRoutes(gated)
	inventoryHandler.RegisterRoutes(gated)
	paymentHandler.RegisterRoutes(gated)
	statisticsHandler.RegisterRoutes(gated)
	exportHandler.RegisterRoutes(gated)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
	for _, closer := range []interface{ Close() }{settingsStore, documentStore, customerStore, inventoryStore, paymentStore} {
		closer.Close()
	}
}

// openStore opens the key-value backend chosen by KV_DRIVER. Every driver
// except memory also follows writes made by other processes.
func openStore(ctx context.Context, cfg config.Config, log *logrus.Logger) (kvstore.Store, error) {
	switch cfg.KVDriver {
	case config.DriverMemory:
		return kvstore.NewMemory(), nil

	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		store := kvstore.NewRedisStore(client, cfg.RedisPrefix, log)
		if err := store.Listen(ctx); err != nil {
			return nil, err
		}
		return store, nil

	case config.DriverPostgres:
		dsn := cfg.PostgresDSN()
		db, err := database.NewConnection(cfg.KVDriver, dsn, log)
		if err != nil {
			return nil, err
		}
		store := kvstore.NewSQLStore(db, log)
		if err := store.Listen(ctx, dsn); err != nil {
			logger.LogWarn(log, "main", "openStore", cfg.KVDriver, "change notifications disabled: "+err.Error())
		}
		return store, nil

	case config.DriverSQLite:
		db, err := database.NewConnection(cfg.KVDriver, cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		store := kvstore.NewSQLStore(db, log)
		if err := store.Poll(ctx, cfg.PollInterval); err != nil {
			logger.LogWarn(log, "main", "openStore", cfg.KVDriver, "change polling disabled: "+err.Error())
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported KV_DRIVER %q", cfg.KVDriver)
	}
}
