// Package config defines the server configuration structure.
package config

// ServerConfig is the root configuration for chankey-server.
type ServerConfig struct {
	Server   ServerSection   `koanf:"server"`
	App      AppSection      `koanf:"app"`
	Security SecuritySection `koanf:"security"`
	Log      LogSection      `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr        string `koanf:"addr"`
	TLSCertFile string `koanf:"tls_cert_file"`
	TLSKeyFile  string `koanf:"tls_key_file"`
}

// AppSection configures the signing application identity and token
// issuance policy.
type AppSection struct {
	// ID is the 32-character application id embedded in every token.
	ID string `koanf:"id"`

	// Certificate is the 32-character application secret used as the
	// HMAC signing key. Never logged.
	Certificate string `koanf:"certificate"`

	// TokenFormat selects the issued wire format: "modern" or "legacy".
	TokenFormat string `koanf:"token_format"`

	// DefaultTTLSeconds is applied when a request omits the ttl.
	DefaultTTLSeconds uint32 `koanf:"default_ttl_seconds"`

	// MaxTTLSeconds caps requested lifetimes (0 = no cap).
	MaxTTLSeconds uint32 `koanf:"max_ttl_seconds"`
}

// SecuritySection configures facade access control.
type SecuritySection struct {
	// APIKeyHash is the argon2id hash of the facade API key.
	// Empty disables authentication.
	APIKeyHash string `koanf:"api_key_hash"`

	// RatePerSecond is the per-client sustained request rate.
	// Zero disables rate limiting.
	RatePerSecond float64 `koanf:"rate_per_second"`

	// RateBurst is the per-client burst allowance.
	RateBurst int `koanf:"rate_burst"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
