package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketai/internal/config"
	"marketai/internal/llm"
	"marketai/internal/logging"
	"marketai/internal/repository"
	"marketai/internal/router"
	"marketai/internal/service"
	"marketai/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	envErr := godotenv.Load()

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if envErr != nil {
		logging.Info().Msg("no .env file loaded, relying on environment variables")
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	if cfg.GroqAPIKey == "" {
		logging.Warn().Msg("GROQ_API_KEY not set, generation requests will fail")
	}

	// --- Database Connection ---
	ctx := context.Background()
	dbPool, err := config.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		logging.Fatal().Err(err).Msg("failed to auto-migrate database")
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)
	llmClient := llm.NewClient(llm.Config{BaseURL: cfg.GroqBaseURL, Timeout: cfg.GroqTimeout})

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	logRepo := repository.NewRequestLogRepository(dbPool)

	// --- Initialize Services ---
	services := router.Services{
		Auth: service.NewAuthService(userRepo, jwtUtil),
		Generation: service.NewGenerationService(logRepo, llmClient, service.ModelConfig{
			APIKey: cfg.GroqAPIKey,
			Model:  cfg.GroqModel,
		}),
		History:   service.NewHistoryService(logRepo),
		Export:    service.NewExportService(logRepo),
		Analytics: service.NewAnalyticsService(userRepo, logRepo),
	}

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router.New(services, jwtUtil, dbPool),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("port", cfg.ServerPort).Str("model", cfg.GroqModel).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("listen")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("server forced to shutdown")
	}

	logging.Info().Msg("server exiting")
}
