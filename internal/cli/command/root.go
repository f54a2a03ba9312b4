package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/chankey/chankey-go/internal/cli/output"
	"github.com/chankey/chankey-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "chankey-cli",
		Usage:   "Chankey access token minting tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			MintCommand(),
			HashKeyCommand(),
			VersionCommand(),
		},
	}
}

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version information",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(c.App.Writer, "chankey-cli %s\n", buildinfo.String())
			return err
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "app-id",
			Aliases: []string{"a"},
			Usage:   "32-character application ID",
			EnvVars: []string{"CHANKEY_APP_ID"},
		},
		&cli.StringFlag{
			Name:    "app-certificate",
			Aliases: []string{"c"},
			Usage:   "32-character application certificate",
			EnvVars: []string{"CHANKEY_APP_CERTIFICATE"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	// App identity
	AppID          string
	AppCertificate string

	// Output format
	Output string // table, json, yaml
	Wide   bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		AppID:          c.String("app-id"),
		AppCertificate: c.String("app-certificate"),
		Output:         c.String("output"),
		Wide:           c.Bool("wide"),
	}
}

// formatterFor returns the formatter selected by the global output flags.
func formatterFor(flags *GlobalFlags) output.Formatter {
	return output.NewFormatter(output.Format(flags.Output), flags.Wide)
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
