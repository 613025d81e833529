package main

import (
	"ShopFront/internal/auth"
	"ShopFront/internal/cache"
	"ShopFront/internal/config"
	"ShopFront/internal/handlers"
	"ShopFront/internal/middleware"
	"ShopFront/internal/repo"
	"ShopFront/internal/service"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)
	cartRepo := repo.NewCartRepository(gormDB)

	seeded, err := repo.SeedItems(ctx, itemRepo)
	if err != nil {
		sugar.Fatalw("failed to seed catalog", "error", err)
	}
	if seeded > 0 {
		sugar.Infow("Catalog seeded", "items", seeded)
	}

	catalogCache, closeCache := newCatalogCache(ctx, cfg, sugar)
	defer closeCache()

	tokens := auth.NewTokenManager(cfg.AuthSecret)
	userService := service.NewUserService(userRepo, tokens)
	catalogService := service.NewCatalogService(itemRepo, catalogCache, sugar)
	cartService := service.NewCartService(cartRepo, itemRepo)

	h := handlers.NewHandler(userService, catalogService, cartService, tokens, sugar, cfg)

	srv := &http.Server{
		Addr:              cfg.BaseURL,
		Handler:           h.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"RedisAddr", cfg.RedisAddr,
		"CatalogCacheTTL", cfg.CatalogCacheTTL,
	)

	go func() {
		sugar.Infow("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server forced to shutdown", "error", err)
	}
}

// newCatalogCache поднимает Redis-кеш каталога, если задан адрес.
// Недоступный Redis не мешает старту: каталог работает без кеша.
func newCatalogCache(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (cache.CatalogCache, func()) {
	if cfg.RedisAddr == "" {
		return cache.NopCache{}, func() {}
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("Redis unavailable, catalog cache disabled", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return cache.NopCache{}, func() {}
	}
	log.Infow("Catalog cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CatalogCacheTTL)
	return cache.NewRedisCache(client, cfg.CatalogCacheTTL), func() { _ = client.Close() }
}
