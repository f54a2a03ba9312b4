package rtctoken

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// buildEnv holds the nondeterministic inputs of one token build. Production
// builds draw the salt from crypto/rand and the timestamp from the system
// clock; tests pin both.
type buildEnv struct {
	rand     io.Reader
	now      func() time.Time
	salt     *uint32
	issuedAt *uint32
}

// Option overrides one nondeterministic input of a token build.
type Option func(*buildEnv)

// WithRand sets the random source used to draw the salt.
func WithRand(r io.Reader) Option {
	return func(e *buildEnv) { e.rand = r }
}

// WithClock sets the clock used to capture the issue timestamp.
func WithClock(now func() time.Time) Option {
	return func(e *buildEnv) { e.now = now }
}

// WithSalt pins the 32-bit salt instead of drawing it randomly.
func WithSalt(salt uint32) Option {
	return func(e *buildEnv) { e.salt = &salt }
}

// WithIssuedAt pins the issue timestamp (Unix epoch seconds).
func WithIssuedAt(ts uint32) Option {
	return func(e *buildEnv) { e.issuedAt = &ts }
}

// resolve applies opts and produces the salt and issue timestamp for one
// build. The timestamp is captured exactly once here.
func resolve(opts []Option) (salt, issuedAt uint32, err error) {
	env := buildEnv{
		rand: rand.Reader,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(&env)
	}

	if env.salt != nil {
		salt = *env.salt
	} else {
		var raw [4]byte
		if _, err := io.ReadFull(env.rand, raw[:]); err != nil {
			return 0, 0, fmt.Errorf("rtctoken: draw salt: %w", err)
		}
		salt = binary.LittleEndian.Uint32(raw[:])
	}

	if env.issuedAt != nil {
		issuedAt = *env.issuedAt
	} else {
		issuedAt = uint32(env.now().Unix())
	}

	return salt, issuedAt, nil
}
