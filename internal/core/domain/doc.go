// Package domain defines the core domain models for Chankey.
//
// Domain models are pure value objects without any IO dependencies or
// framework coupling. This package contains:
//
//   - AppCredentials: the process-wide application identity
//   - TokenFormat: the deployment-wide token format selection
//   - Errors: domain-specific error definitions
package domain
