// Package httpserver provides the HTTP/HTTPS server for Chankey.
//
// This package implements the token issuance API using stdlib net/http:
//
//   - Token endpoints: /v1/tokens/rtc, /v1/tokens/rtm
//   - Health endpoints: /health, /ready
//   - Metrics endpoint: /metrics
//
// Features:
//
//   - TLS support
//   - Middleware chain: Auth, RateLimit, Audit, RequestID
//   - Graceful shutdown with configurable timeout
//   - Prometheus metrics integration
package httpserver
