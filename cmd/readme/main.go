package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legaldata-srv/config"
	"legaldata-srv/config/minio"
	"legaldata-srv/config/redis"
	"legaldata-srv/internal/catalogue"
	"legaldata-srv/internal/catalogue/repository"
	fileRepo "legaldata-srv/internal/catalogue/repository/file"
	minioRepo "legaldata-srv/internal/catalogue/repository/minio"
	redisRepo "legaldata-srv/internal/catalogue/repository/redis"
	"legaldata-srv/internal/catalogue/usecase"
	"legaldata-srv/pkg/coverage"
	"legaldata-srv/pkg/discord"
	pkghttp "legaldata-srv/pkg/http"
	"legaldata-srv/pkg/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return 1
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer func() { _ = logger.Sync() }()

	// Create context with signal handling so an interrupted fetch is cancelled
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Coverage API
	coverageClient := coverage.New(coverage.CoverageConfig{
		BaseURL: cfg.Coverage.BaseURL,
		HTTPClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Coverage.TimeoutDuration(),
			Retries:   cfg.Coverage.Retries,
			RetryWait: cfg.Coverage.RetryWaitDuration(),
		}),
	})

	// MinIO mirror (optional)
	var mirrors []repository.ReadmeRepository
	minioClient, err := minio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Warnf(ctx, "MinIO mirror disabled: %v", err)
	} else if minioClient != nil {
		defer minio.Disconnect()
		mirrors = append(mirrors, minioRepo.New(minioClient, logger, minioRepo.Options{
			Bucket:        cfg.MinIO.Bucket,
			ObjectPrefix:  cfg.MinIO.ObjectPrefix,
			PresignExpiry: time.Duration(cfg.MinIO.PresignExpiry) * time.Second,
		}))
		logger.Info(ctx, "MinIO mirror initialized")
	}

	// Redis snapshots (optional)
	var snapshots repository.SnapshotRepository
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Redis snapshots disabled: %v", err)
	} else if redisClient != nil {
		defer redis.Disconnect()
		snapshots = redisRepo.New(redisClient, logger)
		logger.Info(ctx, "Redis snapshot store initialized")
	}

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.Enabled() {
		webhook, err := discord.NewDiscordWebhook(cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err == nil {
			discordClient, err = discord.New(logger, webhook)
		}
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
			discordClient = nil
		} else {
			logger.Info(ctx, "Discord client initialized")
		}
	}

	uc := usecase.New(
		coverageClient,
		fileRepo.New(logger, cfg.Output.Path),
		mirrors,
		snapshots,
		discordClient,
		logger,
		usecase.Config{
			OutputPath:  cfg.Output.Path,
			SnapshotTTL: time.Duration(cfg.Redis.SnapshotTTL) * time.Second,
		},
	)

	out, err := uc.Generate(ctx, catalogue.GenerateInput{})
	if err != nil {
		logger.Errorf(ctx, "README generation failed: %v", err)
		return 1
	}

	for _, line := range catalogue.SummaryLines(out) {
		logger.Info(ctx, line)
	}
	return 0
}
