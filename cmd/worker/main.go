package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/johannesjahn/bun-chat/internal/infrastructure/cache/adapter"
	"github.com/johannesjahn/bun-chat/internal/infrastructure/config"
	"github.com/johannesjahn/bun-chat/internal/infrastructure/database"
	queueadapter "github.com/johannesjahn/bun-chat/internal/infrastructure/queue/adapter"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/task"
	"github.com/johannesjahn/bun-chat/internal/pkg/chat/application/usecase"
	chatadapter "github.com/johannesjahn/bun-chat/internal/pkg/chat/persistence/repository/adapter"
)

// The worker consumes queue tasks emitted by the API, currently the
// message-created fan-out that bumps per-member unread counters.
func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	if cfg.RedisURL == "" {
		log.Error("REDIS_URL is not set, worker has nothing to consume")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	cache, err := adapter.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	srv, err := queueadapter.NewAsynqServer(cfg.RedisURL, cfg.QueueConcurrency, map[string]int{
		task.QueueName: 5,
		"default":      1,
	}, log)
	if err != nil {
		log.Error("queue server failed", "error", err)
		os.Exit(1)
	}

	repo := chatadapter.NewPgChatRepository(pool)
	counters := usecase.NewUnreadCounterUseCase(cache)
	task.RegisterMessageCreatedTask(srv, repo, counters)

	runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("worker started", "concurrency", cfg.QueueConcurrency)
	if err := srv.Run(runCtx); err != nil {
		log.Error("worker failed", "error", err)
		os.Exit(1)
	}
	log.Info("worker stopped")
}
