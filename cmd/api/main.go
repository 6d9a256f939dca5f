package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Schmandi/HIRED-server/internal/api/http"
	"github.com/Schmandi/HIRED-server/internal/api/http/handlers"
	"github.com/Schmandi/HIRED-server/internal/auth"
	"github.com/Schmandi/HIRED-server/internal/config"
	"github.com/Schmandi/HIRED-server/internal/events"
	"github.com/Schmandi/HIRED-server/internal/limiter"
	"github.com/Schmandi/HIRED-server/internal/observability"
	"github.com/Schmandi/HIRED-server/internal/persistence"
	"github.com/Schmandi/HIRED-server/internal/repository"
	"github.com/Schmandi/HIRED-server/internal/service"
	"github.com/Schmandi/HIRED-server/internal/session"
	"github.com/Schmandi/HIRED-server/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	userRepo := repository.NewUserRepository(pg.PoolHandle())

	loginLimiter := limiter.NewNoopLimiter()
	if cfg.Limiter.Enabled {
		loginLimiter = limiter.NewRedisLimiter(redis.Client, cfg.Limiter, logger)
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(service.NewAuditService(dispatcher, logger))

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:     userRepo,
		LoginLimiter: loginLimiter,
		Dispatcher:   dispatcher,
	})
	authMiddleware := auth.NewMiddleware(authService.TokenManager())
	cookies := session.NewTransport(cfg.Auth.SessionCookieMaxAge())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	authHandler := handlers.NewAuthHandler(authService, cookies)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Auth:           authHandler,
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
