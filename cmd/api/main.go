package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	v1 "github.com/johannesjahn/bun-chat/cmd/api/router/v1"
	"github.com/johannesjahn/bun-chat/internal/infrastructure/auth"
	cacheadapter "github.com/johannesjahn/bun-chat/internal/infrastructure/cache/adapter"
	"github.com/johannesjahn/bun-chat/internal/infrastructure/config"
	"github.com/johannesjahn/bun-chat/internal/infrastructure/database"
	queueadapter "github.com/johannesjahn/bun-chat/internal/infrastructure/queue/adapter"
	"github.com/johannesjahn/bun-chat/internal/infrastructure/realtime"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("configuration invalid", "error", err)
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

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = database.Migrate(ctx, pool)
	cancel()
	if err != nil {
		log.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	deps := v1.Deps{
		Pool:             pool,
		Tokens:           auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL()),
		Log:              log,
		MaxMessageLength: cfg.MaxMessageLength,
	}

	// Redis-backed features (unread counters, queue fan-out, websockets) are
	// enabled only when REDIS_URL is configured.
	if cfg.RedisURL != "" {
		cache, err := cacheadapter.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Error("redis unavailable", "error", err)
			os.Exit(1)
		}
		defer cache.Close()
		deps.Cache = cache

		queue, err := queueadapter.NewAsynqClient(cfg.RedisURL)
		if err != nil {
			log.Error("queue client failed", "error", err)
			os.Exit(1)
		}
		defer queue.Close()
		deps.Queue = queue

		hub := realtime.NewHub()
		defer hub.Close()
		deps.Hub = hub
	} else {
		log.Warn("REDIS_URL not set, unread counters, fan-out and websockets disabled")
	}

	r := gin.Default()
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	v1.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown incomplete", "error", err)
	}
}
