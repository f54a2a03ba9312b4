package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/chankey/chankey-go/internal/core/domain"
	"github.com/chankey/chankey-go/internal/core/service"
	"github.com/chankey/chankey-go/internal/infra/buildinfo"
	"github.com/chankey/chankey-go/internal/infra/confloader"
	"github.com/chankey/chankey-go/internal/infra/shutdown"
	"github.com/chankey/chankey-go/internal/server/config"
	"github.com/chankey/chankey-go/internal/server/httpserver"
	"github.com/chankey/chankey-go/internal/telemetry/logger"
	"github.com/chankey/chankey-go/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("chankey-server %s\n", buildinfo.String())
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting chankey-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile)

	metrics := metric.NewRegistry()

	issuer, err := initIssuer(cfg, log, metrics)
	if err != nil {
		return fmt.Errorf("init issuer: %w", err)
	}

	verifier := service.NewAPIKeyVerifier(cfg.Security.APIKeyHash)
	if !verifier.Enabled() {
		log.Warn("api key authentication is disabled")
	}

	var limiters *service.RateLimiterRegistry
	if cfg.Security.RatePerSecond > 0 {
		limiters = service.NewRateLimiterRegistry(cfg.Security.RatePerSecond, cfg.Security.RateBurst)
	}

	router := httpserver.NewRouter(&httpserver.RouterConfig{
		Issuer:      issuer,
		Verifier:    verifier,
		Limiters:    limiters,
		Logger:      log,
		Metrics:     metrics,
		EnableAudit: true,
	})
	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)

	shutdownHandler := shutdown.NewHandler(30 * time.Second)

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	// Hot reload of the log level when the config file changes.
	if *configFile != "" {
		watcher, err := watchLogLevel(*configFile, log)
		if err != nil {
			log.Warn("config watcher unavailable", "error", err)
		} else {
			shutdownHandler.OnShutdown(func(ctx context.Context) error {
				return watcher.Stop()
			})
		}
	}

	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)

		var err error
		if cfg.Server.HTTP.TLSCertFile != "" && cfg.Server.HTTP.TLSKeyFile != "" {
			err = httpServer.ListenAndServeTLS(cfg.Server.HTTP.TLSCertFile, cfg.Server.HTTP.TLSKeyFile)
		} else {
			err = httpServer.ListenAndServe()
		}

		if err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger.
func initLogger(cfg *config.ServerConfig) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, err
	}

	logger.SetDefault(log)
	return log, nil
}

// initIssuer builds the token issuer from the app section.
func initIssuer(cfg *config.ServerConfig, log logger.Logger, metrics *metric.Registry) (*service.IssuerService, error) {
	format, err := domain.ParseTokenFormat(cfg.App.TokenFormat)
	if err != nil {
		return nil, err
	}

	return service.NewIssuerService(service.IssuerConfig{
		Credentials: domain.AppCredentials{
			AppID:     cfg.App.ID,
			AppSecret: cfg.App.Certificate,
		},
		Format:     format,
		DefaultTTL: cfg.App.DefaultTTLSeconds,
		MaxTTL:     cfg.App.MaxTTLSeconds,
		Logger:     log,
		Metrics:    metrics,
	})
}

// watchLogLevel reapplies the log level whenever the config file changes.
func watchLogLevel(configFile string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(path string) {
		cfg, err := loadConfig(path)
		if err != nil {
			log.Warn("config reload failed", "error", err)
			return
		}
		logger.SetLevel(cfg.Log.Level)
		log.Info("log level reloaded", "level", cfg.Log.Level)
	})
	watcher.StartAsync()

	return watcher, nil
}
