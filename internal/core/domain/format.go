package domain

import "strings"

// TokenFormat selects which of the two wire formats a deployment issues.
// Both share the "007" version prefix with incompatible inner layouts, so
// a deployment must commit to exactly one; the remote verifier cannot tell
// them apart by prefix.
type TokenFormat string

// Supported token formats.
const (
	// FormatModern is the compressed, service-based AccessToken2 layout.
	FormatModern TokenFormat = "modern"

	// FormatLegacy is the uncompressed, CRC32-based v1 layout.
	FormatLegacy TokenFormat = "legacy"
)

// ParseTokenFormat parses a configuration value into a TokenFormat.
func ParseTokenFormat(s string) (TokenFormat, error) {
	switch TokenFormat(strings.ToLower(strings.TrimSpace(s))) {
	case FormatModern:
		return FormatModern, nil
	case FormatLegacy:
		return FormatLegacy, nil
	default:
		return "", ErrUnknownFormat.WithDetails("got " + s)
	}
}

// Valid reports whether f is a known format.
func (f TokenFormat) Valid() bool {
	return f == FormatModern || f == FormatLegacy
}
