package command

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/chankey/chankey-go/internal/core/domain"
	"github.com/chankey/chankey-go/internal/core/service"
	"github.com/chankey/chankey-go/pkg/rtctoken"
)

// MintCommand returns the mint subcommand group.
func MintCommand() *cli.Command {
	return &cli.Command{
		Name:  "mint",
		Usage: "Mint access tokens locally",
		Subcommands: []*cli.Command{
			{
				Name:  "rtc",
				Usage: "Mint an RTC channel access token",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "channel",
						Usage:    "Channel name the token grants access to",
						Required: true,
					},
					&cli.UintFlag{
						Name:  "uid",
						Usage: "Numeric user ID (0 = unset)",
					},
					&cli.StringFlag{
						Name:  "user-account",
						Usage: "String user account (takes precedence over --uid)",
					},
					&cli.StringFlag{
						Name:  "role",
						Usage: "Token role: publisher, subscriber",
						Value: "publisher",
					},
				}, mintFlags()...),
				Action: mintRTC,
			},
			{
				Name:  "rtm",
				Usage: "Mint an RTM messaging token",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "user-id",
						Usage:    "Messaging user ID",
						Required: true,
					},
				}, mintFlags()...),
				Action: mintRTM,
			},
		},
	}
}

// mintFlags returns flags shared by the mint subcommands.
func mintFlags() []cli.Flag {
	return []cli.Flag{
		&cli.UintFlag{
			Name:  "ttl",
			Usage: "Token lifetime in seconds (0 = default 3600)",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Token format: modern, legacy",
			Value: "modern",
		},
		&cli.UintFlag{
			Name:  "issued-at",
			Usage: "Fixed issuance timestamp, Unix seconds (0 = now)",
		},
		&cli.UintFlag{
			Name:  "salt",
			Usage: "Fixed signing salt (0 = random)",
		},
	}
}

func mintRTC(c *cli.Context) error {
	issuer, err := mintIssuer(c)
	if err != nil {
		return err
	}

	resp, err := issuer.IssueRTC(context.Background(), &service.IssueRTCRequest{
		ChannelName: c.String("channel"),
		SubjectID:   c.String("user-account"),
		UID:         uint32(c.Uint("uid")),
		Role:        c.String("role"),
		TTLSeconds:  uint32(c.Uint("ttl")),
	})
	if err != nil {
		return err
	}

	return writeMintResult(c, resp)
}

func mintRTM(c *cli.Context) error {
	issuer, err := mintIssuer(c)
	if err != nil {
		return err
	}

	resp, err := issuer.IssueRTM(context.Background(), &service.IssueRTMRequest{
		UserID:     c.String("user-id"),
		TTLSeconds: uint32(c.Uint("ttl")),
	})
	if err != nil {
		return err
	}

	return writeMintResult(c, resp)
}

// mintIssuer builds an issuer from the global credentials and the
// per-command format and reproducibility flags.
func mintIssuer(c *cli.Context) (*service.IssuerService, error) {
	flags := ParseGlobalFlags(c)

	format, err := domain.ParseTokenFormat(c.String("format"))
	if err != nil {
		return nil, err
	}

	var opts []rtctoken.Option
	if salt := c.Uint("salt"); salt != 0 {
		opts = append(opts, rtctoken.WithSalt(uint32(salt)))
	}

	cfg := service.IssuerConfig{
		Credentials: domain.AppCredentials{
			AppID:     flags.AppID,
			AppSecret: flags.AppCertificate,
		},
		Format:       format,
		TokenOptions: opts,
	}
	if at := c.Uint("issued-at"); at != 0 {
		ts := time.Unix(int64(at), 0)
		cfg.Clock = func() time.Time { return ts }
	}

	return service.NewIssuerService(cfg)
}

// mintResult is the CLI rendering of an issuance.
type mintResult struct {
	Token     string `json:"token" yaml:"token"`
	ExpiresAt uint32 `json:"expires_at" yaml:"expires_at"`
	Format    string `json:"format" yaml:"format"`
}

func writeMintResult(c *cli.Context, resp *service.IssueResponse) error {
	f := formatterFor(ParseGlobalFlags(c))
	return f.Format(c.App.Writer, mintResult{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt,
		Format:    string(resp.Format),
	})
}
