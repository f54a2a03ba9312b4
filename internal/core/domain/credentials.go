package domain

import (
	"fmt"

	"github.com/chankey/chankey-go/pkg/rtctoken"
)

// AppCredentialLen is the fixed length of the application id and secret.
const AppCredentialLen = 32

// AppCredentials is the application identity used to sign every issued
// token. Both fields are fixed 32-character strings supplied via process
// configuration and immutable for the process lifetime.
type AppCredentials struct {
	AppID     string
	AppSecret string
}

// Validate checks presence and the fixed-size contract. Absence or wrong
// length is a hard failure; there is no default.
func (c AppCredentials) Validate() error {
	if c.AppID == "" || c.AppSecret == "" {
		return ErrCredentialsMissing
	}
	if len(c.AppID) != AppCredentialLen {
		return ErrCredentialsInvalid.WithDetails(
			fmt.Sprintf("app id is %d characters, want %d", len(c.AppID), AppCredentialLen))
	}
	if len(c.AppSecret) != AppCredentialLen {
		return ErrCredentialsInvalid.WithDetails(
			fmt.Sprintf("app secret is %d characters, want %d", len(c.AppSecret), AppCredentialLen))
	}
	return nil
}

// Token returns the wire-core view of the credentials.
func (c AppCredentials) Token() rtctoken.Credentials {
	return rtctoken.Credentials{AppID: c.AppID, AppSecret: c.AppSecret}
}
