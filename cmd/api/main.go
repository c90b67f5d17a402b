package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/Autonomanetwork/arcadify-test/internal/config"
	"github.com/Autonomanetwork/arcadify-test/internal/dashboard"
	"github.com/Autonomanetwork/arcadify-test/internal/eth"
	"github.com/Autonomanetwork/arcadify-test/internal/handler"
	"github.com/Autonomanetwork/arcadify-test/internal/logging"
	"github.com/Autonomanetwork/arcadify-test/internal/pool"
	"github.com/Autonomanetwork/arcadify-test/internal/service"
	"github.com/Autonomanetwork/arcadify-test/internal/token"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := token.LoadFile(cfg.TokensFile)
	if err != nil {
		return err
	}
	specs, err := pool.LoadSpecs(cfg.PoolsFile)
	if err != nil {
		return err
	}
	data, err := dashboard.Load(cfg.DashboardFile)
	if err != nil {
		return err
	}

	var provider pool.Provider
	closeClient := func() {}
	if cfg.RPCEndpoint != "" {
		client, err := eth.Dial(ctx, cfg.RPCEndpoint)
		if err != nil {
			return fmt.Errorf("failed to connect to Ethereum node: %w", err)
		}
		provider = pool.NewChainProvider(logger, client, specs)
		closeClient = client.Close
		logger.Info("reserve provider: on-chain", "endpoint", cfg.RPCEndpoint)
	} else {
		provider = pool.NewStaticProvider(specs)
		logger.Info("reserve provider: static", "pools", len(specs))
	}

	quoteService := service.NewQuoteService(logger, registry, provider)
	sessionService := service.NewSessionService(logger, registry, provider, cfg.QuoteTimeout, cfg.SessionTTL)
	dashboardService := service.NewDashboardService(logger, data)

	tokensHandler := handler.NewTokensHandler(logger, registry)
	quoteHandler := handler.NewQuoteHandler(logger, quoteService)
	sessionHandler := handler.NewSessionHandler(logger, sessionService)
	dashboardHandler := handler.NewDashboardHandler(logger, dashboardService)

	app := fiber.New()
	app.Get("/tokens", tokensHandler.Handle())
	app.Get("/swap/quote", quoteHandler.Handle())
	app.Post("/swap/sessions", sessionHandler.Create())
	app.Get("/swap/sessions/:id", sessionHandler.Get())
	app.Put("/swap/sessions/:id/input", sessionHandler.UpdateInput())
	app.Post("/swap/sessions/:id/flip", sessionHandler.Flip())
	app.Get("/treasury", dashboardHandler.Treasury())
	app.Get("/staking", dashboardHandler.Staking())

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			_ = app.Shutdown()
			closeClient()
			return fmt.Errorf("server error: %w", err)
		}
		closeClient()
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_ = app.Shutdown()

	closeClient()

	<-shutdownCtx.Done()
	return nil
}
