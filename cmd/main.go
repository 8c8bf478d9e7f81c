package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codelens-2025.net/internal/adapter/analysis"
	"gitlab.com/codelens-2025.net/internal/adapter/crypto"
	"gitlab.com/codelens-2025.net/internal/adapter/postgres/reviewrepository"
	"gitlab.com/codelens-2025.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/codelens-2025.net/internal/adapter/redis/generationport"
	"gitlab.com/codelens-2025.net/internal/config"
	analyticssvc "gitlab.com/codelens-2025.net/internal/core/services/analytics"
	reviewsvc "gitlab.com/codelens-2025.net/internal/core/services/review"
	submissionsvc "gitlab.com/codelens-2025.net/internal/core/services/submission"
	logger2 "gitlab.com/codelens-2025.net/internal/global/logger"
	"gitlab.com/codelens-2025.net/internal/handlers"
	http2 "gitlab.com/codelens-2025.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting code review service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger, sysCfg.Schema)
	reviewRepo := reviewrepository.NewReviewRepository(db, logger, sysCfg.Schema)
	generationRepo := generationport.NewGenerationRepository(redisClient, logger)
	analyzer := analysis.NewClient(sysCfg.AnalysisConfig, logger)

	// PRIMARY PORTS
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	// services
	submissionService := submissionsvc.NewSubmissionService(submissionRepo, logger)
	reviewService := reviewsvc.NewReviewService(submissionRepo, reviewRepo, analyzer, generationRepo, logger)
	analyticsService := analyticssvc.NewAnalyticsService(submissionRepo, reviewRepo, logger)
	serviceProvider := http2.NewServiceProvider(submissionService, reviewService, analyticsService)

	// server
	middleware := handlers.NewMiddlewareProvider(jwtProvider, logger)
	httpServer := http2.NewServer(8082, "codeReview", *serviceProvider, middleware, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.AppConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.PostgresConfig.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
