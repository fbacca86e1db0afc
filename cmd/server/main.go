// Package main resolves the active AMM environment once at startup and publishes the
// resulting network, contract and wallet configuration over a read-only HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/yourorg/amm-envconfig/internal/config"
	"github.com/yourorg/amm-envconfig/internal/integrity"
	"github.com/yourorg/amm-envconfig/internal/metrics"
	"github.com/yourorg/amm-envconfig/internal/otel"
	"github.com/yourorg/amm-envconfig/internal/server"
)

func main() {
	checkOnly := flag.Bool("check", false, "resolve the active environment, print a summary and exit")
	envFile := flag.String("env-file", ".env", "optional dotenv file loaded before reading the environment")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		logrus.Fatalf("Failed to load %s: %v", *envFile, err)
	}
	cfg := config.Load()
	setupLogging(cfg.LogFormat, cfg.LogLevel)

	shutdownTracer, err := otel.InitTracer(cfg.OtelEndpoint)
	if err != nil {
		logrus.WithError(err).Warn("Tracing disabled")
	}

	code := 0
	if err := run(cfg, *checkOnly); err != nil {
		logrus.WithError(err).Error("Startup failed")
		code = 1
	}
	shutdownTracer()
	os.Exit(code)
}

// run resolves the environment and, unless checkOnly is set, serves it until SIGINT or SIGTERM
func run(cfg config.Config, checkOnly bool) error {
	var (
		registry *prometheus.Registry
		m        *metrics.Metrics
	)
	if cfg.EnableMetrics {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		var err error
		if m, err = metrics.New(registry); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	bundle, warnings, err := resolveEnvironment(context.Background(), cfg, m)
	if err != nil {
		return err
	}
	logWarnings(warnings)

	fp, err := integrity.Compute(bundle)
	if err != nil {
		return err
	}
	network := bundle.Network()
	logrus.WithFields(logrus.Fields{
		"key":         bundle.Key(),
		"chain_id":    network.ID,
		"network":     network.Name,
		"contract":    bundle.ContractAddress(),
		"warnings":    len(warnings),
		"fingerprint": fp.Short(),
	}).Info("Environment resolved")

	if checkOnly {
		fmt.Printf("%s chain=%d contract=%s warnings=%d fingerprint=%s\n",
			bundle.Key(), network.ID, bundle.ContractAddress(), len(warnings), fp.SHA256)
		return nil
	}

	settings, err := buildSettings(cfg)
	if err != nil {
		return err
	}
	if !settings.HasProjectID() {
		logrus.Warn("No wallet project id configured; set REOWN_PROJECT_ID")
	}

	opts := server.Options{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
		Metrics:            m,
	}
	if registry != nil {
		opts.Gatherer = registry
	}

	gin.SetMode(gin.ReleaseMode)
	srv, err := server.New(bundle, warnings, settings, opts)
	if err != nil {
		return err
	}

	return serve(cfg, srv.Handler())
}

// serve runs the HTTP server and shuts it down gracefully on SIGINT or SIGTERM
func serve(cfg config.Config, handler http.Handler) error {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Server starting on port %s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("error starting server: %w", err)
	case <-quit:
	}

	logrus.Info("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logrus.Info("Server stopped")
	return nil
}
