package command

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/chankey/chankey-go/internal/core/domain"
	"github.com/chankey/chankey-go/internal/core/service"
	"github.com/chankey/chankey-go/pkg/rtctoken"
)

const (
	testAppID   = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	testAppCert = "BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB"
)

// runApp runs the CLI with args and captures stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app := App()
	var buf bytes.Buffer
	app.Writer = &buf
	app.ErrWriter = &buf

	err := app.Run(append([]string{"chankey-cli"}, args...))
	return buf.String(), err
}

func credArgs(extra ...string) []string {
	args := []string{"--app-id", testAppID, "--app-certificate", testAppCert}
	return append(args, extra...)
}

func TestApp_Structure(t *testing.T) {
	app := App()
	if app.Name != "chankey-cli" {
		t.Errorf("Name = %q, want chankey-cli", app.Name)
	}

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}
	for _, want := range []string{"mint", "hash-key", "version"} {
		if !names[want] {
			t.Errorf("missing command %q", want)
		}
	}
}

func TestMintRTC_Deterministic(t *testing.T) {
	out, err := runApp(t, credArgs(
		"--output", "json",
		"mint", "rtc",
		"--channel", "room-42",
		"--uid", "7",
		"--role", "publisher",
		"--ttl", "600",
		"--salt", "16909060", // 0x01020304
		"--issued-at", "1700000000",
	)...)
	if err != nil {
		t.Fatalf("run error: %v\noutput: %s", err, out)
	}

	var result struct {
		Token     string `json:"token"`
		ExpiresAt uint32 `json:"expires_at"`
		Format    string `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v\noutput: %s", err, out)
	}

	want, err := rtctoken.IssueRTC(
		rtctoken.Credentials{AppID: testAppID, AppSecret: testAppCert},
		"room-42", "7", rtctoken.RolePublisher, 600,
		rtctoken.WithSalt(0x01020304), rtctoken.WithIssuedAt(1700000000),
	)
	if err != nil {
		t.Fatalf("direct issue error: %v", err)
	}

	if result.Token != want {
		t.Errorf("token = %q, want %q", result.Token, want)
	}
	if result.ExpiresAt != 1700000000+600 {
		t.Errorf("expires_at = %d, want %d", result.ExpiresAt, 1700000000+600)
	}
	if result.Format != "modern" {
		t.Errorf("format = %q, want modern", result.Format)
	}
}

func TestMintRTC_Legacy(t *testing.T) {
	out, err := runApp(t, credArgs(
		"--output", "json",
		"mint", "rtc",
		"--channel", "room-42",
		"--user-account", "user-7",
		"--format", "legacy",
		"--salt", "16909060",
		"--issued-at", "1700000000",
	)...)
	if err != nil {
		t.Fatalf("run error: %v\noutput: %s", err, out)
	}

	var result struct {
		Token  string `json:"token"`
		Format string `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	want, err := rtctoken.IssueRTCLegacy(
		rtctoken.Credentials{AppID: testAppID, AppSecret: testAppCert},
		"room-42", "user-7", rtctoken.RolePublisher, rtctoken.DefaultTTL,
		rtctoken.WithSalt(0x01020304), rtctoken.WithIssuedAt(1700000000),
	)
	if err != nil {
		t.Fatalf("direct issue error: %v", err)
	}

	if result.Token != want {
		t.Errorf("token = %q, want %q", result.Token, want)
	}
	if result.Format != "legacy" {
		t.Errorf("format = %q, want legacy", result.Format)
	}
}

func TestMintRTM_MatchesRTC(t *testing.T) {
	rtm, err := runApp(t, credArgs(
		"--output", "json",
		"mint", "rtm",
		"--user-id", "user-7",
		"--salt", "16909060",
		"--issued-at", "1700000000",
	)...)
	if err != nil {
		t.Fatalf("rtm run error: %v\noutput: %s", err, rtm)
	}

	rtc, err := runApp(t, credArgs(
		"--output", "json",
		"mint", "rtc",
		"--channel", "user-7",
		"--user-account", "user-7",
		"--role", "publisher",
		"--salt", "16909060",
		"--issued-at", "1700000000",
	)...)
	if err != nil {
		t.Fatalf("rtc run error: %v\noutput: %s", err, rtc)
	}

	if rtm != rtc {
		t.Errorf("rtm output = %s, want identical to rtc output %s", rtm, rtc)
	}
}

func TestMintRTC_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "missing credentials",
			args: []string{"mint", "rtc", "--channel", "room-42"},
		},
		{
			name: "short app id",
			args: []string{"--app-id", "short", "--app-certificate", testAppCert,
				"mint", "rtc", "--channel", "room-42"},
		},
		{
			name: "missing channel",
			args: credArgs("mint", "rtc"),
		},
		{
			name: "unknown role",
			args: credArgs("mint", "rtc", "--channel", "room-42", "--role", "admin"),
		},
		{
			name: "unknown format",
			args: credArgs("mint", "rtc", "--channel", "room-42", "--format", "v9"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runApp(t, tt.args...); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestMintRTC_EnvCredentials(t *testing.T) {
	t.Setenv("CHANKEY_APP_ID", testAppID)
	t.Setenv("CHANKEY_APP_CERTIFICATE", testAppCert)

	out, err := runApp(t,
		"--output", "json",
		"mint", "rtc",
		"--channel", "room-42",
		"--salt", "16909060",
		"--issued-at", "1700000000",
	)
	if err != nil {
		t.Fatalf("run error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, `"token": "007`) {
		t.Errorf("output missing 007 token: %s", out)
	}
}

func TestMintRTC_TableAndYAMLOutput(t *testing.T) {
	for _, format := range []string{"table", "yaml"} {
		t.Run(format, func(t *testing.T) {
			out, err := runApp(t, credArgs(
				"--output", format,
				"mint", "rtc",
				"--channel", "room-42",
				"--salt", "16909060",
				"--issued-at", "1700000000",
			)...)
			if err != nil {
				t.Fatalf("run error: %v\noutput: %s", err, out)
			}
			if !strings.Contains(out, "007") {
				t.Errorf("%s output missing token: %s", format, out)
			}
		})
	}
}

func TestHashKey(t *testing.T) {
	out, err := runApp(t, "hash-key", "facade-key")
	if err != nil {
		t.Fatalf("run error: %v\noutput: %s", err, out)
	}

	hash := strings.TrimSpace(out)
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash = %q, want argon2id prefix", hash)
	}

	verifier := service.NewAPIKeyVerifier(hash)
	if err := verifier.Verify("facade-key"); err != nil {
		t.Errorf("Verify(facade-key) error = %v", err)
	}
	if err := verifier.Verify("wrong-key"); err == nil {
		t.Error("Verify(wrong-key) should fail")
	}
}

func TestHashKey_MissingArgument(t *testing.T) {
	_, err := runApp(t, "hash-key")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !domain.IsDomainError(err, domain.ErrMissingArgument.Code) {
		t.Errorf("error = %v, want %s", err, domain.ErrMissingArgument.Code)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.HasPrefix(out, "chankey-cli ") {
		t.Errorf("output = %q, want chankey-cli prefix", out)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	var got *GlobalFlags
	app := App()
	app.Commands = append(app.Commands, &cli.Command{
		Name: "probe",
		Action: func(c *cli.Context) error {
			got = ParseGlobalFlags(c)
			return nil
		},
	})

	if err := app.Run([]string{"chankey-cli",
		"--app-id", testAppID,
		"--app-certificate", testAppCert,
		"--output", "yaml",
		"--wide",
		"probe",
	}); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if got == nil {
		t.Fatal("probe command did not run")
	}
	if got.AppID != testAppID || got.AppCertificate != testAppCert {
		t.Errorf("credentials = %q/%q, want test values", got.AppID, got.AppCertificate)
	}
	if got.Output != "yaml" || !got.Wide {
		t.Errorf("output flags = %q/%v, want yaml/true", got.Output, got.Wide)
	}
}
