package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/Paprikas/double-double/internal/adapter/http"
	"github.com/Paprikas/double-double/internal/adapter/http/handler"
	"github.com/Paprikas/double-double/internal/adapter/http/middleware"
	postgresRepo "github.com/Paprikas/double-double/internal/adapter/repository/postgres"
	redisRepo "github.com/Paprikas/double-double/internal/adapter/repository/redis"
	"github.com/Paprikas/double-double/internal/infrastructure/config"
	"github.com/Paprikas/double-double/internal/infrastructure/logger"
	"github.com/Paprikas/double-double/internal/infrastructure/metrics"
	"github.com/Paprikas/double-double/internal/infrastructure/postgres"
	"github.com/Paprikas/double-double/internal/infrastructure/redis"
	"github.com/Paprikas/double-double/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations applied")

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	balanceRepo := postgresRepo.NewBalanceRepository(pool)
	retrier := postgresRepo.NewRetrier()
	idGen := postgresRepo.NewULIDGenerator()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	m := metrics.New()

	accountUC := usecase.NewAccountUseCase(accountRepo, idGen).WithMetrics(m)
	entryUC := usecase.NewEntryUseCase(txManager, accountRepo, entryRepo, idGen, retrier, cache).
		WithMetrics(m)
	balanceUC := usecase.NewBalanceUseCase(accountRepo, balanceRepo, cache).
		WithCacheTTL(cfg.BalanceCacheTTL).
		WithMetrics(m)

	accountHandler := handler.NewAccountHandler(accountUC)
	entryHandler := handler.NewEntryHandler(entryUC)
	balanceHandler := handler.NewBalanceHandler(balanceUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:    accountHandler,
		EntryHandler:      entryHandler,
		BalanceHandler:    balanceHandler,
		HealthHandler:     healthHandler,
		IdempotencyStore:  idempotencyStore,
		LoggingMiddleware: middleware.NewLoggingMiddleware(log.Logger),
		MetricsMiddleware: middleware.NewMetricsMiddleware(m),
		RateLimiter:       rateLimiter,
	})

	server := &http.Server{
		Addr:         listenAddr(cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// listenAddr accepts either a bare port or a full host:port pair.
func listenAddr(port string) string {
	if _, _, err := net.SplitHostPort(port); err == nil {
		return port
	}

	return ":" + port
}
