package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/horizon60/Horizon60-Backend/internal/api"
	"github.com/horizon60/Horizon60-Backend/internal/config"
	"github.com/horizon60/Horizon60-Backend/internal/database"
	"github.com/horizon60/Horizon60-Backend/internal/marketdata"
	"github.com/horizon60/Horizon60-Backend/internal/prices"
	"github.com/horizon60/Horizon60-Backend/internal/repository"
	"github.com/horizon60/Horizon60-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	accountRepo := repository.NewAccountRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	credentialRepo, err := repository.NewCredentialRepository(db, cfg.MarketData.CredentialKey)
	if err != nil {
		log.Fatalf("Failed to initialize credential store: %v", err)
	}

	// The quote cache lives for the process; valuations fall back to
	// stored purchase prices until a sync populates it.
	quoteCache := prices.NewCache()

	stockClient := marketdata.NewStockClient(nil, cfg.MarketData.StockBaseURL, cfg.MarketData.RelayURL, credentialRepo.GetToken)
	cryptoClient := marketdata.NewCryptoClient(nil, cfg.MarketData.CryptoBaseURL, cfg.MarketData.RelayURL)

	// Create services
	systemService := service.NewSystemService(db)
	accountService := service.NewAccountService(accountRepo)
	netWorthService := service.NewNetWorthService(accountRepo, quoteCache)
	projectionService := service.NewProjectionService(accountRepo, settingsRepo, quoteCache)
	priceService := service.NewPriceService(accountRepo, quoteCache, stockClient, cryptoClient, cfg.MarketData.FetchDelay)
	snapshotService := service.NewSnapshotService(snapshotRepo, accountRepo, quoteCache)
	settingsService := service.NewSettingsService(settingsRepo, accountRepo, credentialRepo)

	// Optional scheduled price sync
	scheduler := cron.New()
	if cfg.MarketData.SyncSchedule != "" {
		_, err := scheduler.AddFunc(cfg.MarketData.SyncSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()
			result, err := priceService.SyncAll(ctx)
			if err != nil {
				log.Printf("Scheduled price sync failed: %v", err)
				return
			}
			log.Printf("Scheduled price sync: %d updated, %d failed", result.Updated, len(result.Failed))
		})
		if err != nil {
			log.Fatalf("Invalid price sync schedule %q: %v", cfg.MarketData.SyncSchedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// Create router
	router := api.NewRouter(
		systemService,
		accountService,
		netWorthService,
		projectionService,
		priceService,
		snapshotService,
		settingsService,
		cfg,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // sync requests walk tickers with a fixed delay
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
