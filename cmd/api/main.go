package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/laredo-ist/workorder-service/internal/api/http"
	"github.com/laredo-ist/workorder-service/internal/api/http/handlers"
	"github.com/laredo-ist/workorder-service/internal/auth"
	"github.com/laredo-ist/workorder-service/internal/config"
	"github.com/laredo-ist/workorder-service/internal/events"
	"github.com/laredo-ist/workorder-service/internal/observability"
	"github.com/laredo-ist/workorder-service/internal/persistence"
	"github.com/laredo-ist/workorder-service/internal/repository"
	"github.com/laredo-ist/workorder-service/internal/routing"
	"github.com/laredo-ist/workorder-service/internal/service"
	"github.com/laredo-ist/workorder-service/internal/worker"
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

	pool := pg.PoolHandle()
	ticketRepo := repository.NewTicketRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	engineOpts := []routing.Option{}
	if cfg.Routing.FuzzyKeywords {
		engineOpts = append(engineOpts, routing.WithFuzzyMatching())
	}
	engine := routing.NewEngine(engineOpts...)

	ticketService := service.NewTicketService(service.TicketDependencies{
		Engine:     engine,
		TicketRepo: ticketRepo,
		Dispatcher: dispatcher,
		Cache:      redis,
		StatsTTL:   cfg.Redis.StatsTTL(),
		Metrics:    metrics,
	})

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	authService := service.NewAuthService(employeeRepo, tokens)
	authMiddleware := auth.NewAuthMiddleware(tokens, employeeRepo)

	notifications := service.NewNotificationService(logger)
	worker.StartNotificationWorker(notifications, dispatcher)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Routing:        handlers.NewRoutingHandler(ticketService),
		Auth:           handlers.NewAuthHandler(authService),
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
