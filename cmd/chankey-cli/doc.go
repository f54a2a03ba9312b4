// Package main provides the entry point for chankey-cli.
//
// The CLI tool mints access tokens locally from app credentials:
//
//   - RTC channel token minting (mint rtc)
//   - RTM messaging token minting (mint rtm)
//   - API key hashing for server configuration (hash-key)
//
// Usage:
//
//	chankey-cli [command] [flags]
//	chankey-cli mint rtc --channel room-42 --uid 7 --output json
//	chankey-cli hash-key my-secret-key
//
// Credentials come from --app-id/--app-certificate or the
// CHANKEY_APP_ID and CHANKEY_APP_CERTIFICATE environment variables.
package main
