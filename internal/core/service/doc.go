// Package service provides domain services for Chankey.
//
// IssuerService wraps the token wire core with deployment policy: credential
// validation, format selection, TTL defaulting and clamping, metrics, and
// structured logging. APIKeyVerifier authenticates callers of the HTTP
// facade and enforces per-client rate limits.
package service
