// Package config defines the server configuration structure.
package config

// Default configuration values.
const (
	DefaultHTTPAddr  = "127.0.0.1:5080"
	DefaultHTTPSAddr = "127.0.0.1:5443"

	DefaultTokenFormat = "modern"
	DefaultTTLSeconds  = 3600
	DefaultMaxTTL      = 86400

	DefaultRatePerSecond = 50
	DefaultRateBurst     = 100

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration. Application
// credentials have no default and must be supplied.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr: DefaultHTTPAddr,
			},
		},
		App: AppSection{
			TokenFormat:       DefaultTokenFormat,
			DefaultTTLSeconds: DefaultTTLSeconds,
			MaxTTLSeconds:     DefaultMaxTTL,
		},
		Security: SecuritySection{
			RatePerSecond: DefaultRatePerSecond,
			RateBurst:     DefaultRateBurst,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
