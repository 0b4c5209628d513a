package main

import (
	"context"
	"errors"
	"fmt"
	"kube_probe_api/api"
	"kube_probe_api/config"
	"kube_probe_api/metrics"
	"kube_probe_api/services"
	"kube_probe_api/structs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config

// init loads environment variables and initializes config and logger
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.NewLogger(cfg, true)

	if envErr != nil {
		logger.Debug("No .env file found, proceeding with system environment variables")
	}
}

func main() {
	recorder, err := metrics.New(metrics.Options{
		RuntimeCollectors: cfg.Metrics.RuntimeCollectors,
	})
	if err != nil {
		logger.Fatal("Failed to initialize metrics recorder", gecho.Field("error", err))
	}

	svc := services.NewServiceManager(logger, cfg)

	srv := &http.Server{
		Addr:           config.Addr(cfg),
		Handler:        api.App(cfg, svc, recorder),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Setup graceful shutdown BEFORE starting the server
	done := setupGracefulShutdown(logger, srv)

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, srv.Addr),
		gecho.Field("environment", cfg.Server.Environment),
		gecho.Field("version", cfg.Server.Version),
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", gecho.Field("error", err))
	}

	<-done
	logger.Info("Server stopped")
}

// setupGracefulShutdown drains in-flight requests on SIGINT/SIGTERM. The
// returned channel closes once shutdown has finished.
func setupGracefulShutdown(logger *gecho.Logger, srv *http.Server) <-chan struct{} {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})

	logger.Info("Graceful shutdown handler initialized")

	go func() {
		defer close(done)
		sig := <-c
		logger.Info("Received shutdown signal", gecho.Field("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown failed", gecho.Field("error", err))
		}
	}()

	return done
}
