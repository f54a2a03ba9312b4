package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/chankey/chankey-go/internal/core/domain"
)

// Argon2id parameters used when hashing API keys.
const (
	argonTime    = 2
	argonMemory  = 16384
	argonThreads = 2
	argonKeyLen  = 32
	argonSaltLen = 16
)

// APIKeyVerifier authenticates facade callers against a single
// configured argon2id hash. The plaintext key is never stored; an empty
// hash disables authentication entirely.
type APIKeyVerifier struct {
	hash string
}

// NewAPIKeyVerifier creates a verifier for the given encoded hash.
func NewAPIKeyVerifier(hash string) *APIKeyVerifier {
	return &APIKeyVerifier{hash: hash}
}

// Enabled reports whether authentication is configured.
func (v *APIKeyVerifier) Enabled() bool {
	return v.hash != ""
}

// Verify checks a presented key against the configured hash.
func (v *APIKeyVerifier) Verify(key string) error {
	if !v.Enabled() {
		return nil
	}
	if key == "" {
		return domain.ErrAPIKeyMissing
	}
	if !verifyArgon2Hash(key, v.hash) {
		return domain.ErrAPIKeyInvalid
	}
	return nil
}

// HashAPIKey hashes a plaintext API key for storage in configuration.
// Format: $argon2id$v=19$m=16384,t=2,p=2$<salt>$<hash>
func HashAPIKey(key string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", domain.ErrInternalServer.WithCause(err)
	}

	sum := argon2.IDKey([]byte(key), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(sum),
	), nil
}

// verifyArgon2Hash verifies a key against an encoded argon2id hash.
func verifyArgon2Hash(key, hash string) bool {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		return false
	}

	if parts[1] != "argon2id" {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}

	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(key), salt, time, memory, threads, uint32(len(expected)))

	// Constant-time comparison to prevent timing attacks
	return subtle.ConstantTimeCompare(computed, expected) == 1
}
