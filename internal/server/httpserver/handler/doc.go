// Package handler provides HTTP request handlers for Chankey.
//
// This package contains handlers for all HTTP endpoints:
//
//   - token.go: RTC and RTM token issuance
//   - health.go: Health and readiness checks
//
// All handlers follow a consistent pattern:
//
//   - Parse and validate request
//   - Call domain service
//   - Format and return response
//   - Handle errors with appropriate HTTP status codes
package handler
