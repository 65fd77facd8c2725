package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"commission-calculator/config"
	httpLayer "commission-calculator/http"
	"commission-calculator/logger"
	"commission-calculator/repository"
	"commission-calculator/service"
)

func main() {
	cfg := config.Load()
	logger.InitLogger(cfg.LogLevel)

	comparisonRepo := repository.NewComparisonRepositoryMemory(cfg.HistorySize)

	var cache repository.CacheRepository
	switch cfg.CacheBackend {
	case config.CacheRedis:
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		if err := redisCache.Ping(ctx); err != nil {
			logger.L.Warn("redis not reachable, cache misses will be recomputed", "addr", cfg.RedisAddr, "error", err)
		}
		cancel()
		cache = redisCache
	default:
		cache = repository.NewMemoryCache(cfg.CacheTTL)
	}
	logger.L.Info("cache configured", "backend", cfg.CacheBackend, "ttl", cfg.CacheTTL.String())

	commissionService := service.NewCommissionService(comparisonRepo, cache)
	commissionHandler := httpLayer.NewCommissionHandler(commissionService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.NewRouter(commissionHandler, rateLimiter),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.L.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.L.Error("error starting server", "error", err)
		return
	case <-quit:
		logger.L.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.L.Error("error during server shutdown", "error", err)
	}

	logger.L.Info("server exited")
}
