package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"colorbet/internal/config"
	"colorbet/internal/database"
	"colorbet/internal/handler"
	"colorbet/internal/logger"
	"colorbet/internal/repository/postgres"
	"colorbet/internal/scheduler"
	"colorbet/internal/service"

	_ "colorbet/docs"
)

// @title Color Prediction Game API
// @version 1.0
// @description Round-based color-prediction betting game server
// @host localhost:8080
// @BasePath /api
func main() {
	// Setup logger
	log := logger.New(true)

	// Load configuration from environment (.env is optional)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Apply schema migrations before opening the pool
	if err := database.Migrate(cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	roundRepo := postgres.NewRoundRepository(dbPool)
	betRepo := postgres.NewBetRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Services
	settlementService := service.NewSettlementService(userRepo, betRepo, txManager, cfg.Game, log)
	roundService := service.NewRoundService(roundRepo, settlementService, cfg.Game, log)
	bettingService := service.NewBettingService(userRepo, roundRepo, betRepo, txManager, cfg.Game, log)
	gameService := service.NewGameService(userRepo, roundRepo, betRepo, cfg.Game, log)

	// Root context to be canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Seed the demo user so the game is playable out of the box
	if _, err := gameService.EnsureUser(ctx, cfg.Game.DemoUsername); err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo user")
	}

	// Scheduler driving the round lifecycle
	roundScheduler := scheduler.NewScheduler(roundService, cfg.Game.TickInterval, log)
	roundScheduler.Start(ctx)
	defer roundScheduler.Stop()

	// http handler
	h := handler.NewHandler(bettingService, gameService, cfg.Game.DemoUsername, log)
	router := h.SetupRoutes()

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
