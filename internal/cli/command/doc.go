// Package command provides CLI command definitions for chankey-cli.
//
// It uses urfave/cli/v2 for command parsing. Tokens are minted locally
// from the configured app credentials; no server connection is needed.
package command
