package rtctoken

import "fmt"

// DefaultTTL is the token lifetime applied when the caller passes zero.
const DefaultTTL uint32 = 3600

// Role selects the privilege set granted to a channel subject.
type Role uint8

// Roles understood by the issuer.
const (
	// RolePublisher may join and publish audio, video and data.
	RolePublisher Role = iota + 1

	// RoleSubscriber may only join the channel.
	RoleSubscriber
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePublisher:
		return "publisher"
	case RoleSubscriber:
		return "subscriber"
	default:
		return "unknown"
	}
}

// Credentials are the process-wide application identity: a 32-character
// application id and a 32-character application secret.
type Credentials struct {
	AppID     string
	AppSecret string
}

// Validate reports whether the credentials satisfy the fixed-size contract.
func (c Credentials) Validate() error {
	return checkCredentials(c.AppID, c.AppSecret)
}

// IssueRTC mints a modern-format token authorizing subjectID to act as
// role in channel for ttlSeconds (DefaultTTL when zero). Grant expiries
// equal the token expiry.
func IssueRTC(creds Credentials, channel, subjectID string, role Role, ttlSeconds uint32, opts ...Option) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}
	if err := checkFields(channel, subjectID); err != nil {
		return "", err
	}
	if ttlSeconds == 0 {
		ttlSeconds = DefaultTTL
	}

	token, err := NewAccessToken(creds.AppID, ttlSeconds, opts...)
	if err != nil {
		return "", err
	}

	svc := NewRTCService(channel, subjectID)
	grantRole(svc.Grants, role, token.ExpireAt())
	token.AddService(svc)

	return token.Build(creds.AppSecret)
}

// IssueRTM mints a modern-format messaging token. RTM authorization is a
// degenerate RTC publisher grant over a channel named after the user; the
// token carries no messaging-specific semantics beyond that.
func IssueRTM(creds Credentials, userID string, ttlSeconds uint32, opts ...Option) (string, error) {
	return IssueRTC(creds, userID, userID, RolePublisher, ttlSeconds, opts...)
}

// IssueRTCLegacy mints a legacy-format token with the same role policy as
// IssueRTC.
func IssueRTCLegacy(creds Credentials, channel, subjectID string, role Role, ttlSeconds uint32, opts ...Option) (string, error) {
	if err := creds.Validate(); err != nil {
		return "", err
	}
	if err := checkFields(channel, subjectID); err != nil {
		return "", err
	}
	if ttlSeconds == 0 {
		ttlSeconds = DefaultTTL
	}

	token, err := NewLegacyToken(creds.AppID, channel, subjectID, opts...)
	if err != nil {
		return "", err
	}
	grantRole(token.Grants, role, token.IssuedAt+ttlSeconds)

	return token.Build(creds.AppSecret)
}

// IssueRTMLegacy is the legacy-format counterpart of IssueRTM.
func IssueRTMLegacy(creds Credentials, userID string, ttlSeconds uint32, opts ...Option) (string, error) {
	return IssueRTCLegacy(creds, userID, userID, RolePublisher, ttlSeconds, opts...)
}

// grantRole fills grants according to the fixed role policy: join always
// first, then audio, video and data in that order for publishers. The
// order is load-bearing because the signature covers the encoded bytes.
func grantRole(grants *PrivilegeSet, role Role, expireAt uint32) {
	grants.Add(PrivilegeJoinChannel, expireAt)
	if role == RolePublisher {
		grants.Add(PrivilegePublishAudio, expireAt)
		grants.Add(PrivilegePublishVideo, expireAt)
		grants.Add(PrivilegePublishData, expireAt)
	}
}

// checkFields rejects caller-supplied values that cannot fit a u16 length
// prefix before any builder state is created.
func checkFields(channel, subjectID string) error {
	if len(channel) > maxFieldLen {
		return fmt.Errorf("%w: channel name is %d bytes", ErrEncodingOverflow, len(channel))
	}
	if len(subjectID) > maxFieldLen {
		return fmt.Errorf("%w: subject id is %d bytes", ErrEncodingOverflow, len(subjectID))
	}
	return nil
}
