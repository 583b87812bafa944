package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/perugo/perugo-api/internal/config"
	"github.com/perugo/perugo-api/internal/database"
	"github.com/perugo/perugo-api/internal/events"
	"github.com/perugo/perugo-api/internal/http/handlers"
	"github.com/perugo/perugo-api/internal/logger"
	"github.com/perugo/perugo-api/internal/mailer"
	"github.com/perugo/perugo-api/internal/repo/postgres"
	"github.com/perugo/perugo-api/internal/seed"
	"github.com/perugo/perugo-api/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Connect to database
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Apply schema migrations
	if err := database.Migrate(ctx, cfg.Database.URL); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(pool)
	destinationRepo := postgres.NewDestinationRepository(pool)

	// Replace the destination catalog with the embedded dataset
	if err := seed.NewSeeder(destinationRepo).Run(ctx); err != nil {
		logger.Error("Failed to seed destination catalog", "error", err)
		os.Exit(1)
	}

	// Event bus: NATS when configured, no-op otherwise
	var eventBus events.Publisher = events.NopBus{}
	if cfg.NATS.URL != "" {
		bus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		eventBus = bus
	}
	defer eventBus.Close()

	// Mailer: log-only in dev mode, MailerSend or SMTP in production
	var mailService mailer.Service
	switch {
	case cfg.Email.DevMode:
		mailService = mailer.NewDevMailer()
	case cfg.Email.MailerSendKey != "":
		mailService = mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.FromEmail)
	default:
		mailService = mailer.NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom, cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPUseTLS)
	}

	// Initialize services and handlers
	authService := service.NewAuthService(userRepo, mailService, eventBus, cfg)
	catalogService := service.NewCatalogService(destinationRepo)
	h := handlers.New(authService, catalogService)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      h.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting server", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
