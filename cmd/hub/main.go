// cmd/hub/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"womenrisehub/internal/cache"
	"womenrisehub/internal/common/config"
	"womenrisehub/internal/common/logger"
	"womenrisehub/internal/gateway"
	"womenrisehub/internal/notify"
	"womenrisehub/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting WomenRiseHub sync core...",
		zap.String("environment", cfg.App.Environment),
		zap.Bool("remoteConfigured", cfg.API.Configured()),
	)

	ctx := context.Background()

	// --- Init Redis snapshot cache with retry ---
	var snapshots *cache.RedisSnapshots
	err = retryWithBackoff(func() error {
		snapshots = cache.NewRedis(cfg.Redis, cfg.Cache)
		return snapshots.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer snapshots.Close()
	zapLog.Info("Redis connected successfully")

	// Demo identity; a real host wires its auth layer here.
	session := gateway.StaticSession{
		ID:     os.Getenv("HUB_USER_ID"),
		Name:   os.Getenv("HUB_USER_NAME"),
		Email:  os.Getenv("HUB_USER_EMAIL"),
		Token:  os.Getenv("HUB_TOKEN"),
		Scheme: "Bearer",
	}

	gw := gateway.New(cfg.API, session, log)

	projectStore := store.New(store.Options{
		Config:    cfg,
		Gateway:   gw,
		Snapshots: snapshots,
		Session:   session,
		Logger:    log,
	})

	feed := notify.NewFeed(notify.Recipient{ID: session.ID, Email: session.Email}, log)
	projectStore.OnChange(func() {
		feed.Apply(projectStore.Projects(), time.Now())
	})

	projectStore.Init(ctx)
	zapLog.Info("Project store initialized",
		zap.Int("projects", len(projectStore.Projects())),
		zap.Int("unread", feed.UnreadCount()),
	)

	// --- Metrics endpoint ---
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping...")
}
