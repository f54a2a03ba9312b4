package rtctoken

import "errors"

// Error values returned by the builders. All of them indicate a
// configuration or programming defect; none are retryable.
var (
	// ErrMissingConfiguration indicates the application id or secret is empty.
	ErrMissingConfiguration = errors.New("rtctoken: application credentials not configured")

	// ErrInvalidCredentials indicates the application id or secret has the
	// wrong length. Both are fixed 32-character strings.
	ErrInvalidCredentials = errors.New("rtctoken: application id and secret must be exactly 32 characters")

	// ErrEncodingOverflow indicates a length-prefixed field exceeds the
	// 16-bit length budget of the wire format.
	ErrEncodingOverflow = errors.New("rtctoken: field exceeds 65535 bytes")
)
