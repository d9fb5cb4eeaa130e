package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"jobhub/internal/api"
	"jobhub/internal/auth"
	"jobhub/internal/config"
	"jobhub/internal/database"
	"jobhub/internal/storage"
	"jobhub/internal/store"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info("api bootstrapping",
		slog.String("db_host", cfg.Database.Host),
		slog.Int("db_port", cfg.Database.Port),
		slog.String("db_name", cfg.Database.Name),
	)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		logger.Error("init database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		logger.Error("auto migrate", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrated")

	st := store.New(db)

	ctx := context.Background()
	if err := seedCvTemplates(ctx, st); err != nil {
		logger.Error("seed cv templates", slog.Any("error", err))
		os.Exit(1)
	}

	verifier, err := auth.NewOIDCVerifier(ctx, cfg.OIDC)
	if err != nil {
		logger.Error("init oidc verifier", slog.Any("error", err))
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr()})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error("ping redis", slog.Any("error", err))
		os.Exit(1)
	}

	storageClient, err := storage.NewClient(cfg.MinIO)
	if err != nil {
		logger.Error("init object storage", slog.Any("error", err))
		os.Exit(1)
	}

	router := api.NewRouter()
	api.RegisterRoutes(router, st, verifier, redisClient, logger, storageClient, cfg.Uploads, cfg.RateLimit)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", slog.String("address", address))

	if err := router.Run(address); err != nil {
		logger.Error("api server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
