// Package logger provides structured logging for Chankey.
//
// It wraps log/slog:
//
//   - logger.go: configuration, level handling, the Logger interface
//   - context.go: context-aware logging with request/trace IDs
//   - redact.go: sensitive data redaction
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Automatic masking of secrets and issued token values
//   - Context propagation for request tracing
package logger
