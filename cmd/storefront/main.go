// cmd/storefront/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/infrastructure/api"
	"github.com/your-org/storefront-client/internal/infrastructure/redis"
	"github.com/your-org/storefront-client/internal/interfaces/http"
	"github.com/your-org/storefront-client/internal/pkg/logger"
	"github.com/your-org/storefront-client/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.WithField("version", cfg.App.Version).
		WithField("environment", cfg.App.Environment).
		Infof("Starting %s", cfg.App.Name)

	client, err := api.NewClient(cfg.API, logg)
	if err != nil {
		logg.WithError(err).Fatal("Failed to create API client")
	}

	st := store.New(client, logg)

	opts := http.Options{Cookies: client}
	if cfg.RedisEnabled() {
		redisClient, err := redis.NewConnection(cfg, logg)
		if err != nil {
			// Rate limiting is optional; the gateway still serves views.
			logg.WithError(err).Warn("Redis unavailable, rate limiting disabled")
		} else {
			defer redisClient.Close()
			opts.Limiter = redis.NewLimiter(redisClient.Redis, "storefront:rate_limit")
			opts.Redis = redisClient
		}
	}

	server := http.NewServer(cfg, st, logg, opts)

	// Views answer "checking" until the startup session checks settle.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.API.RequestTimeout)
		defer cancel()
		st.Resolve(ctx)
	}()

	go func() {
		if err := server.Start(); err != nil {
			logg.WithError(err).Fatal("Failed to start view gateway")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logg.WithError(err).Error("Failed to shutdown view gateway gracefully")
	}
	st.Close()

	logg.Info("Shutdown completed")
}
