package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shopyard/fulfillment/payments-service/config"
	"github.com/shopyard/fulfillment/shared/httpserver"
	"github.com/shopyard/fulfillment/shared/logging"
)

func main() {
	// Load configuration
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.ServiceName, cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting service", zap.String("env", cfg.Env), zap.String("port", cfg.Port))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize dependencies
	deps, err := config.BuildDependencies(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to build dependencies", zap.Error(err))
	}
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Error("error closing dependencies", zap.Error(err))
		}
	}()

	logger.Info("payment providers registered", zap.Strings("providers", deps.ProviderRegistry.ProviderIDs()))

	router := httpserver.NewRouter(deps.Telemetry, logger)
	deps.PaymentHandlers.RegisterRoutes(router)
	deps.BreakerHandlers.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Serve(ctx, server, logger)
	})
	g.Go(func() error {
		if err := deps.EventSubscriber.Subscribe(ctx, deps.EventRouter); err != nil {
			return err
		}
		<-ctx.Done()
		return deps.EventSubscriber.Close()
	})

	if err := g.Wait(); err != nil {
		logger.Error("service stopped with error", zap.Error(err))
		return
	}

	logger.Info("service stopped")
}
