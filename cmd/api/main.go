package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobtracker-backend/config"
	"go-jobtracker-backend/internal/ai/jobanalyzer"
	v1 "go-jobtracker-backend/internal/delivery/http/v1"
	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/internal/repository/postgres"
	"go-jobtracker-backend/internal/repository/redisstore"
	"go-jobtracker-backend/internal/usecase"
	"go-jobtracker-backend/pkg/auth"
	"go-jobtracker-backend/pkg/database"
	"go-jobtracker-backend/pkg/logger"
	"go-jobtracker-backend/pkg/redis"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job tracker backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (extension session state; optional)
	var sessionRepo domain.SessionRepository
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, extension session state disabled", "error", err)
	} else {
		sessionRepo = redisstore.NewSessionRepository(redis.Client())
		defer redis.Close()
	}

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 6. Setup Analyzer
	analyzer := jobanalyzer.NewAnalyzer(cfg.OpenAIAPIKey, cfg.AIModel, cfg.AITemperature)

	// 7. Setup UseCases
	profileUC := usecase.NewProfileUsecase(profileRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, profileRepo)
	analyzeUC := usecase.NewAnalyzeUsecase(analyzer, sessionRepo)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:     profileUC,
		ApplicationUC: applicationUC,
		AnalyzeUC:     analyzeUC,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
		DB:            dbPool,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
