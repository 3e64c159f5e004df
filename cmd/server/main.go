package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Maxito7/marea_backend/internal/application"
	"github.com/Maxito7/marea_backend/internal/config"
	"github.com/Maxito7/marea_backend/internal/email"
	"github.com/Maxito7/marea_backend/internal/faq"
	"github.com/Maxito7/marea_backend/internal/infrastructure/database"
	"github.com/Maxito7/marea_backend/internal/infrastructure/repository"
	handlers "github.com/Maxito7/marea_backend/internal/interfaces/http"
	"github.com/Maxito7/marea_backend/internal/logger"
	"github.com/Maxito7/marea_backend/internal/metrics"
	"github.com/Maxito7/marea_backend/internal/scheduler"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.LogDevelopment,
	})
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.GetDBConnString())
	if err != nil {
		appLogger.Fatal("database unavailable", logger.Err(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		appLogger.Fatal("could not run migrations", logger.Err(err))
	}

	// El índice se construye una sola vez; un dataset inválido detiene el arranque
	matchCfg := faq.DefaultConfig()
	matchCfg.MatchThreshold = cfg.FaqMatchThreshold
	matchCfg.AcceptThreshold = cfg.FaqAcceptThreshold
	matcher, err := faq.NewDefaultMatcher(matchCfg)
	if err != nil {
		appLogger.Fatal("invalid faq configuration", logger.Err(err))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	// Chatbot
	limiter := application.NewRateLimiter(cfg.ChatRateWindow, cfg.ChatRateLimit)
	defer limiter.Stop()
	interactionRepo := repository.NewInteractionRepository(db)
	chatbotService := application.NewChatbotService(matcher, interactionRepo, limiter, recorder, appLogger)
	chatbotHandler := handlers.NewChatbotHandler(chatbotService, appLogger)

	// Email Client
	var sender application.DigestSender
	if cfg.EmailEnabled() {
		emailClient, err := email.NewClient(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.SMTPFromName,
			cfg.SMTPFromEmail,
		)
		if err != nil {
			appLogger.Warn("email client initialization failed, digest disabled", logger.Err(err))
		} else {
			sender = emailClient
		}
	}

	digestService := application.NewDigestService(interactionRepo, sender, cfg.DigestRecipient, appLogger)
	digestScheduler := scheduler.NewDigestScheduler(digestService, appLogger)
	digestScheduler.Start(ctx)
	defer digestScheduler.Stop()

	app := handlers.NewApp(handlers.ServerConfig{
		AllowOrigins: strings.Join(cfg.AllowedOrigins(), ","),
		Gatherer:     registry,
	}, chatbotHandler, handlers.NewHealthHandler(db, appLogger))

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			appLogger.Error("error shutting down server", logger.Err(err))
		}
	}()

	appLogger.Info("server starting", logger.String("port", cfg.ServerPort))
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		appLogger.Fatal("error starting server", logger.Err(err))
	}
}
