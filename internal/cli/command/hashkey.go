package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/chankey/chankey-go/internal/core/domain"
	"github.com/chankey/chankey-go/internal/core/service"
)

// HashKeyCommand returns the hash-key command. The printed hash goes
// into the server's security.api_key_hash setting.
func HashKeyCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash-key",
		Usage:     "Hash an API key for server configuration",
		ArgsUsage: "KEY",
		Action:    hashKey,
	}
}

func hashKey(c *cli.Context) error {
	key := c.Args().First()
	if key == "" {
		return domain.ErrMissingArgument.WithDetails("KEY argument is required")
	}

	hash, err := service.HashAPIKey(key)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, hash)
	return err
}
