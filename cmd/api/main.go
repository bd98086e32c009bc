package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"reddit-persona/internal/config"
	apihttp "reddit-persona/internal/http"
	"reddit-persona/internal/lexicon"
	"reddit-persona/internal/reddit"
	"reddit-persona/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	store, err := lexicon.Default()
	if err != nil {
		logger.Fatal("lexicon init", zap.Error(err))
	}

	scoring := service.ScoringConfig{
		MinMatches:            cfg.MinMatches,
		MinConfidence:         cfg.MinConfidence,
		MaxCitations:          cfg.MaxCitations,
		RecencyBoostFactor:    cfg.RecencyBoostFactor,
		RecencyWindowFraction: cfg.RecencyWindowFraction,
	}
	if err := scoring.Validate(); err != nil {
		logger.Fatal("scoring config", zap.Error(err))
	}

	assembler := service.NewAssembler(store, scoring, logger)

	var fetcher reddit.Fetcher = reddit.NewClient(cfg.RedditBaseURL, cfg.UserAgent, cfg.RequestInterval, logger)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			fetcher = reddit.NewCachedFetcher(fetcher, redisClient, cfg.CacheTTL, logger)
		}
		cancel()
	}

	var (
		jwtSvc *service.JWTService
		authH  *apihttp.AuthHandler
	)
	if cfg.JWTSecret != "" {
		jwtSvc = service.NewJWTService(cfg.JWTSecret, cfg.JWTAccessTTL)
		authH = apihttp.NewAuthHandler(logger, jwtSvc, cfg.APIKeyHash)
	} else {
		logger.Warn("jwt secret not configured, persona routes are open")
	}

	personaH := apihttp.NewPersonaHandler(logger, fetcher, assembler, cfg.FetchLimit)
	router := apihttp.NewRouter(logger, personaH, authH, jwtSvc)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
