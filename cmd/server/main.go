package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tcgurt/config"
	"tcgurt/internal/cache"
	"tcgurt/internal/catalog"
	"tcgurt/internal/database"
	"tcgurt/internal/handler"
	"tcgurt/internal/identity"
	"tcgurt/internal/middleware"
	"tcgurt/internal/repository"
	"tcgurt/internal/router"
	"tcgurt/internal/service"
	"tcgurt/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env.local 不存在時直接用環境變數
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Configure(cfg.Server.Environment, cfg.Server.LogLevel); err != nil {
		log.Fatalf("Failed to configure logger: %v", err)
	}
	defer logger.L.Sync()
	appLog := logger.WithComponent("main")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(ctx, &cfg.Database)
	if err != nil {
		appLog.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.CreateSchema(ctx, pool); err != nil {
		appLog.Fatal("Failed to create schema", zap.Error(err))
	}

	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		appLog.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	verifier, err := identity.NewJWKSVerifier(ctx, &cfg.Identity)
	if err != nil {
		appLog.Fatal("Failed to initialize token verifier", zap.Error(err))
	}
	defer verifier.Close()

	profiles := identity.NewHTTPProfileProvider(&cfg.Identity)
	catalogClient := catalog.NewHTTPClient(&cfg.Catalog)
	searchCache := cache.NewRedisCatalogSearchCache(rdb, cfg.Catalog.CacheTTL)

	eventRepo := repository.NewEventRepository(pool)
	cardListRepo := repository.NewCardListRepository(pool)
	cardRepo := repository.NewCardRepository(pool)

	eventService := service.NewEventService(eventRepo, profiles)
	cardListService := service.NewCardListService(cardListRepo, cardRepo)
	cardService := service.NewCardService(catalogClient, searchCache)

	limiter := middleware.NewRateLimiter(ctx, middleware.LimiterConfig{
		RPS:   cfg.RateLimit.RPS,
		Burst: cfg.RateLimit.Burst,
	})

	engine := router.New(router.Handlers{
		Events:    handler.NewEventHandler(eventService),
		CardLists: handler.NewCardListHandler(cardListService),
		Cards:     handler.NewCardHandler(cardService),
	}, router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth:           middleware.RequireAuth(verifier),
		SearchLimit:    limiter.Middleware(middleware.ClientIPKey),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		appLog.Info("Server listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Error("Server stopped unexpectedly", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	appLog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Graceful shutdown failed", zap.Error(err))
	}
}
