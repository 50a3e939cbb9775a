package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"arena-wallet/internal/config"
	"arena-wallet/internal/database"
	"arena-wallet/internal/handler"
	"arena-wallet/internal/live"
	"arena-wallet/internal/logger"
	"arena-wallet/internal/referral"
	"arena-wallet/internal/repository/postgres"
	"arena-wallet/internal/sentinel"
	"arena-wallet/internal/service"
	"arena-wallet/internal/session"
	"arena-wallet/internal/worker"
	"arena-wallet/migrations"

	_ "arena-wallet/docs"

	"golang.org/x/sync/errgroup"
)

// @title Arena Wallet API
// @version 1.0
// @description Wallet, tournament entry and support API for the arena client
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from .env and the environment
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(true)
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.New(cfg.Server.PrettyLogs)

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if cfg.Database.MigrateOnStart {
		if err := database.Migrate(dbCtx, dbPool, migrations.FS, log); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	// Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	tournamentRepo := postgres.NewTournamentRepository(dbPool)
	transactionRepo := postgres.NewTransactionRepository(dbPool)
	requestRepo := postgres.NewRequestRepository(dbPool)
	mailRepo := postgres.NewMailRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Services
	tournamentService := service.NewTournamentService(profileRepo, tournamentRepo, transactionRepo, requestRepo, txManager, cfg.Wallet, log)
	walletService := service.NewWalletService(profileRepo, transactionRepo, requestRepo, txManager, cfg.Wallet, log)
	accountService := service.NewAccountService(profileRepo, transactionRepo, txManager, referral.NewGenerator(), cfg.Wallet, log)
	supportService := service.NewSupportService(profileRepo, requestRepo, mailRepo, cfg.Wallet, log)
	sentinelService := service.NewSentinelService(profileRepo, txManager, sentinel.NewGate(cfg.Wallet.MaxBalance), log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// Store changes fan out through the live feed
	feed := live.NewFeed(profileRepo, tournamentRepo, log)
	listener := postgres.NewListener(dbPool, cfg.Worker.ListenRetryDelay, log)
	g.Go(func() error {
		listener.Run(gctx, feed.Publish)
		return nil
	})

	// Workers
	sentinelWatcher := worker.NewSentinelWatcher(feed, sentinelService, log)
	if err := sentinelWatcher.Start(gctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start sentinel watcher")
	}
	defer sentinelWatcher.Stop()

	mailJanitor := worker.NewMailJanitor(supportService, cfg.Worker.MailPurgeInterval, log)
	mailJanitor.Start(gctx)
	defer mailJanitor.Stop()

	// http handler
	verifier := session.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	h := handler.NewHandler(gctx, tournamentService, walletService, accountService, supportService, verifier, feed, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g.Go(func() error {
		log.Info().Str("port", cfg.Server.Port).Msg("Server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		// Wait for shutdown signal
		<-gctx.Done()
		log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
			return err
		}
		log.Info().Msg("HTTP server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server exited with error")
	}

	log.Info().Msg("Shutdown complete")
}
