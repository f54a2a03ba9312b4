package rtctoken

import (
	"encoding/base64"
	"fmt"
)

// LegacyToken assembles a v1-style token for one subject in one channel.
// The format is uncompressed and carries CRC32 checksums of the channel
// name and subject id alongside a single privilege grant set.
type LegacyToken struct {
	AppID       string
	ChannelName string
	SubjectID   string
	IssuedAt    uint32
	Salt        uint32
	Grants      *PrivilegeSet
}

// NewLegacyToken starts a legacy token build with an empty grant set.
func NewLegacyToken(appID, channelName, subjectID string, opts ...Option) (*LegacyToken, error) {
	salt, issuedAt, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return &LegacyToken{
		AppID:       appID,
		ChannelName: channelName,
		SubjectID:   subjectID,
		IssuedAt:    issuedAt,
		Salt:        salt,
		Grants:      NewPrivilegeSet(),
	}, nil
}

// AddPrivilege grants p until expireAt (Unix epoch seconds).
func (t *LegacyToken) AddPrivilege(p Privilege, expireAt uint32) {
	t.Grants.Add(p, expireAt)
}

// Build signs and serializes the token.
func (t *LegacyToken) Build(appSecret string) (string, error) {
	if err := checkCredentials(t.AppID, appSecret); err != nil {
		return "", err
	}

	message, err := t.message()
	if err != nil {
		return "", err
	}
	if len(message) > maxFieldLen {
		return "", fmt.Errorf("%w: message is %d bytes", ErrEncodingOverflow, len(message))
	}

	// The signed bytes concatenate the fields with no delimiters or length
	// prefixes. The verifier depends on these exact bytes; adding field
	// boundaries would break interoperability.
	toSign := make([]byte, 0, len(t.AppID)+len(t.ChannelName)+len(t.SubjectID)+len(message))
	toSign = append(toSign, t.AppID...)
	toSign = append(toSign, t.ChannelName...)
	toSign = append(toSign, t.SubjectID...)
	toSign = append(toSign, message...)
	signature := hmacSign(appSecret, toSign)

	w := NewWriter()
	w.PutUint16(uint16(len(signature)))
	w.PutBytes(signature)
	w.PutUint32(checksum([]byte(t.ChannelName)))
	w.PutUint32(checksum([]byte(t.SubjectID)))
	w.PutUint16(uint16(len(message)))
	w.PutBytes(message)
	content, err := w.Finish()
	if err != nil {
		return "", err
	}

	return Version + base64.StdEncoding.EncodeToString(content), nil
}

// message is salt:u32 ∥ issuedAt:u32 ∥ grants.
func (t *LegacyToken) message() ([]byte, error) {
	w := NewWriter()
	w.PutUint32(t.Salt)
	w.PutUint32(t.IssuedAt)
	t.Grants.encode(w)
	return w.Finish()
}
