// Package rtctoken builds channel access tokens for the RTC media backend.
//
// Two token formats are implemented. The modern format (version "007",
// AccessToken2 layout) signs a canonical binary payload with HMAC-SHA256,
// DEFLATE-compresses the signed content and Base64-encodes it. The legacy
// format shares the "007" version prefix but uses an uncompressed layout
// with CRC32 checksums of the channel name and subject id.
//
// Both layouts are fixed by the remote verifier and must be reproduced
// bit-for-bit. The package is pure and stateless: every build consumes a
// salt and an issue timestamp, both drawn from injectable sources so tests
// can pin them.
package rtctoken
