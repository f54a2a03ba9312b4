// Package main provides the entry point for chankey-server.
//
// The server is the Chankey token issuance service that provides:
//
//   - HTTP/HTTPS API for RTC and RTM token issuance
//   - API-key authenticated access with per-client rate limiting
//   - Prometheus metrics and health probes
//   - Hot reload of the log level on configuration changes
//
// Usage:
//
//	chankey-server [flags]
//	chankey-server --config /path/to/config.yaml
//
// The server loads configuration, initializes infrastructure components,
// and starts the HTTP listener.
package main
