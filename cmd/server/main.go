package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "carlink-backend/internal/api/http"
	"carlink-backend/internal/config"
	"carlink-backend/internal/jobs"
	"carlink-backend/internal/logger"
	"carlink-backend/internal/repository/postgres"
	"carlink-backend/internal/scheduler"
	"carlink-backend/internal/security"
	"carlink-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting CarLink Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	accessSvc := service.NewAccessService()
	authSvc := service.NewAuthService(store.UserRepository, tokenManager, emailSvc)
	carSvc := service.NewCarService(store.CarRepository, accessSvc)
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.CarRepository,
		store.PartnerRepository,
		accessSvc,
		emailSvc,
		time.Duration(cfg.Booking.HoldTTLMinutes)*time.Minute,
	)
	partnerSvc := service.NewPartnerService(store.PartnerRepository)
	commissionSvc := service.NewCommissionService(store.CommissionRepository, accessSvc)
	apiKeySvc := service.NewApiKeyService(store.ApiKeyRepository)

	// Initialize HTTP API
	middleware := httpapi.NewMiddleware(tokenManager, apiKeySvc)
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:       httpapi.NewAuthHandler(authSvc),
		Car:        httpapi.NewCarHandler(carSvc),
		Booking:    httpapi.NewBookingHandler(bookingSvc),
		Partner:    httpapi.NewPartnerHandler(partnerSvc),
		Commission: httpapi.NewCommissionHandler(commissionSvc),
		ApiKey:     httpapi.NewApiKeyHandler(apiKeySvc),
		External:   httpapi.NewExternalHandler(bookingSvc),
	}, middleware)

	// Initialize in-process scheduler
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{Email: emailSvc}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	cronScheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
