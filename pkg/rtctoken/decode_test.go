package rtctoken

// Test-only decoders mirroring the two wire formats. They exist purely so
// tests can assert on the packed layout; production verification happens
// on the remote backend.

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/flate"
)

// byteReader walks a decoded payload, failing the test on truncation.
type byteReader struct {
	t   *testing.T
	buf []byte
	off int
}

func newByteReader(t *testing.T, buf []byte) *byteReader {
	t.Helper()
	return &byteReader{t: t, buf: buf}
}

func (r *byteReader) take(n int) []byte {
	r.t.Helper()
	if r.off+n > len(r.buf) {
		r.t.Fatalf("payload truncated: want %d bytes at offset %d, have %d", n, r.off, len(r.buf)-r.off)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *byteReader) u16() uint16 {
	b := r.take(2)
	return uint16(b[0]) | uint16(b[1])<<8
}

func (r *byteReader) u32() uint32 {
	b := r.take(4)
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (r *byteReader) str() string {
	n := int(r.u16())
	return string(r.take(n))
}

func (r *byteReader) remaining() int {
	return len(r.buf) - r.off
}

// decodedGrants preserves wire order alongside the id→expiry mapping.
type decodedGrants struct {
	order  []uint16
	expire map[uint16]uint32
}

func readGrants(r *byteReader) decodedGrants {
	g := decodedGrants{expire: make(map[uint16]uint32)}
	count := int(r.u16())
	for i := 0; i < count; i++ {
		id := r.u16()
		g.order = append(g.order, id)
		g.expire[id] = r.u32()
	}
	return g
}

type decodedRTCService struct {
	serviceType uint16
	channel     string
	subject     string
	grants      decodedGrants
}

type decodedModern struct {
	signature []byte
	salt      uint32
	issuedAt  uint32
	ttl       uint16
	services  []decodedRTCService
}

func decodeModern(t *testing.T, token string) decodedModern {
	t.Helper()
	if !strings.HasPrefix(token, Version) {
		t.Fatalf("token missing %q prefix: %q", Version, token)
	}
	compressed, err := base64.StdEncoding.DecodeString(token[len(Version):])
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	content, err := io.ReadAll(flate.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}

	r := newByteReader(t, content)
	d := decodedModern{
		signature: append([]byte(nil), r.take(32)...),
		salt:      r.u32(),
		issuedAt:  r.u32(),
		ttl:       r.u16(),
	}
	count := int(r.u16())
	for i := 0; i < count; i++ {
		svc := decodedRTCService{serviceType: r.u16()}
		if svc.serviceType != ServiceTypeRTC {
			t.Fatalf("unexpected service type %d", svc.serviceType)
		}
		svc.channel = r.str()
		svc.subject = r.str()
		svc.grants = readGrants(r)
		d.services = append(d.services, svc)
	}
	if r.remaining() != 0 {
		t.Fatalf("%d trailing bytes after services", r.remaining())
	}
	return d
}

type decodedLegacy struct {
	signature  []byte
	channelCRC uint32
	subjectCRC uint32
	salt       uint32
	issuedAt   uint32
	grants     decodedGrants
}

func decodeLegacy(t *testing.T, token string) decodedLegacy {
	t.Helper()
	if !strings.HasPrefix(token, Version) {
		t.Fatalf("token missing %q prefix: %q", Version, token)
	}
	content, err := base64.StdEncoding.DecodeString(token[len(Version):])
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}

	r := newByteReader(t, content)
	sigLen := int(r.u16())
	d := decodedLegacy{
		signature:  append([]byte(nil), r.take(sigLen)...),
		channelCRC: r.u32(),
		subjectCRC: r.u32(),
	}
	msgLen := int(r.u16())
	msg := newByteReader(t, r.take(msgLen))
	d.salt = msg.u32()
	d.issuedAt = msg.u32()
	d.grants = readGrants(msg)
	if msg.remaining() != 0 {
		t.Fatalf("%d trailing bytes in message", msg.remaining())
	}
	if r.remaining() != 0 {
		t.Fatalf("%d trailing bytes after message", r.remaining())
	}
	return d
}
