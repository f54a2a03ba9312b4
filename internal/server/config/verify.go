// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/chankey/chankey-go/internal/core/domain"
)

// Verify validates the configuration. Missing or malformed application
// credentials are a startup failure, not a per-request one.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyApp(&cfg.App); err != nil {
		return err
	}
	return verifySecurity(&cfg.Security)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if (cfg.HTTP.TLSCertFile == "") != (cfg.HTTP.TLSKeyFile == "") {
		return errors.New("server.http.tls_cert_file and tls_key_file must be set together")
	}
	if cfg.HTTP.TLSCertFile != "" {
		for _, f := range []string{cfg.HTTP.TLSCertFile, cfg.HTTP.TLSKeyFile} {
			if _, err := os.Stat(f); err != nil {
				return fmt.Errorf("tls file %s: %w", f, err)
			}
		}
	}
	return nil
}

func verifyApp(cfg *AppSection) error {
	creds := domain.AppCredentials{AppID: cfg.ID, AppSecret: cfg.Certificate}
	if err := creds.Validate(); err != nil {
		return fmt.Errorf("app credentials: %w", err)
	}

	if _, err := domain.ParseTokenFormat(cfg.TokenFormat); err != nil {
		return fmt.Errorf("app.token_format: %w", err)
	}

	if cfg.MaxTTLSeconds > 0 && cfg.DefaultTTLSeconds > cfg.MaxTTLSeconds {
		return errors.New("app.default_ttl_seconds exceeds app.max_ttl_seconds")
	}
	return nil
}

func verifySecurity(cfg *SecuritySection) error {
	if cfg.RatePerSecond < 0 {
		return errors.New("security.rate_per_second must not be negative")
	}
	if cfg.RatePerSecond > 0 && cfg.RateBurst < 1 {
		return errors.New("security.rate_burst must be at least 1 when rate limiting is enabled")
	}
	return nil
}
