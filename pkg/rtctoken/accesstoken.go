package rtctoken

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/klauspost/compress/flate"
)

// Version is the literal version prefix of both token formats. The inner
// layouts are incompatible despite the shared prefix; a deployment must
// commit to exactly one format.
const Version = "007"

// credentialLen is the fixed length of the application id and secret.
const credentialLen = 32

// AccessToken assembles a modern-format (AccessToken2 layout) token from an
// application id, an ordered list of service descriptors, a random salt, an
// issue timestamp and a time-to-live.
type AccessToken struct {
	AppID    string
	IssuedAt uint32 // Unix epoch seconds, captured once at build start
	TTL      uint32 // seconds from IssuedAt until the token expires
	Salt     uint32

	services []Service
}

// NewAccessToken starts a token build. The salt and issue timestamp are
// resolved immediately, so a zero-TTL caller sees the same instant the
// grants were computed against.
func NewAccessToken(appID string, ttlSeconds uint32, opts ...Option) (*AccessToken, error) {
	salt, issuedAt, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return &AccessToken{
		AppID:    appID,
		IssuedAt: issuedAt,
		TTL:      ttlSeconds,
		Salt:     salt,
	}, nil
}

// ExpireAt returns the absolute expiry of the token (Unix epoch seconds).
// Grant expiries default to this value.
func (t *AccessToken) ExpireAt() uint32 {
	return t.IssuedAt + t.TTL
}

// AddService attaches a service descriptor. Attachment order is part of
// the signed bytes.
func (t *AccessToken) AddService(s Service) {
	t.services = append(t.services, s)
}

// Build signs and serializes the token, returning the version-prefixed,
// Base64-encoded string.
func (t *AccessToken) Build(appSecret string) (string, error) {
	if err := checkCredentials(t.AppID, appSecret); err != nil {
		return "", err
	}

	payload, err := t.signingPayload()
	if err != nil {
		return "", err
	}
	signature := hmacSign(appSecret, payload)

	content, err := t.contentPayload(signature)
	if err != nil {
		return "", err
	}

	compressed, err := deflate(content)
	if err != nil {
		return "", err
	}

	return Version + base64.StdEncoding.EncodeToString(compressed), nil
}

// signingPayload is the exact byte sequence covered by the signature:
// appID:string ∥ issuedAt:u32 ∥ ttl:u32 ∥ salt:u32 ∥ count:u16 ∥ services.
func (t *AccessToken) signingPayload() ([]byte, error) {
	w := NewWriter()
	w.PutString(t.AppID)
	w.PutUint32(t.IssuedAt)
	w.PutUint32(t.TTL)
	w.PutUint32(t.Salt)
	w.PutUint16(uint16(len(t.services)))
	for _, s := range t.services {
		s.Pack(w)
	}
	return w.Finish()
}

// contentPayload is the transmitted byte sequence. The TTL is carried as
// 16 bits here but 32 bits in the signing payload; the verifier depends on
// the asymmetry.
func (t *AccessToken) contentPayload(signature []byte) ([]byte, error) {
	w := NewWriter()
	w.PutBytes(signature)
	w.PutUint32(t.Salt)
	w.PutUint32(t.IssuedAt)
	w.PutUint16(uint16(t.TTL))
	w.PutUint16(uint16(len(t.services)))
	for _, s := range t.services {
		s.Pack(w)
	}
	return w.Finish()
}

// hmacSign computes HMAC-SHA256 over payload with the application secret
// as the key.
func hmacSign(appSecret string, payload []byte) []byte {
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(payload)
	return mac.Sum(nil)
}

// deflate compresses b with raw DEFLATE.
func deflate(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("rtctoken: init deflate: %w", err)
	}
	if _, err := zw.Write(b); err != nil {
		return nil, fmt.Errorf("rtctoken: deflate: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("rtctoken: deflate: %w", err)
	}
	return buf.Bytes(), nil
}

// checkCredentials enforces the fixed-size credential contract shared by
// both builders.
func checkCredentials(appID, appSecret string) error {
	if appID == "" || appSecret == "" {
		return ErrMissingConfiguration
	}
	if len(appID) != credentialLen || len(appSecret) != credentialLen {
		return ErrInvalidCredentials
	}
	return nil
}
