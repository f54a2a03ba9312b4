package rtctoken

import (
	"bytes"
	"testing"
)

func TestPrivilegeSet_InsertionOrder(t *testing.T) {
	ps := NewPrivilegeSet()
	ps.Add(PrivilegePublishData, 100)
	ps.Add(PrivilegeJoinChannel, 100)
	ps.Add(PrivilegePublishAudio, 100)

	want := []Privilege{PrivilegePublishData, PrivilegeJoinChannel, PrivilegePublishAudio}
	got := ps.Privileges()
	if len(got) != len(want) {
		t.Fatalf("Privileges() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Privileges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPrivilegeSet_OverwriteKeepsPosition(t *testing.T) {
	ps := NewPrivilegeSet()
	ps.Add(PrivilegeJoinChannel, 100)
	ps.Add(PrivilegePublishAudio, 100)
	ps.Add(PrivilegeJoinChannel, 200) // overwrite, must not move to the back

	if ps.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ps.Len())
	}
	if got := ps.Privileges()[0]; got != PrivilegeJoinChannel {
		t.Errorf("first privilege = %v, want join_channel", got)
	}
	if e, _ := ps.Get(PrivilegeJoinChannel); e != 200 {
		t.Errorf("expiry = %d, want 200", e)
	}
}

func TestPrivilegeSet_Encode(t *testing.T) {
	ps := NewPrivilegeSet()
	ps.Add(PrivilegeJoinChannel, 0x01020304)
	ps.Add(PrivilegePublishVideo, 0x0A0B0C0D)

	w := NewWriter()
	ps.encode(w)
	got, err := w.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	want := []byte{
		0x02, 0x00, // count
		0x01, 0x00, 0x04, 0x03, 0x02, 0x01, // join, expiry LE
		0x03, 0x00, 0x0D, 0x0C, 0x0B, 0x0A, // publish video, expiry LE
	}
	if !bytes.Equal(got, want) {
		t.Errorf("encode = %x, want %x", got, want)
	}
}

func TestPrivilegeSet_EncodeEmpty(t *testing.T) {
	w := NewWriter()
	NewPrivilegeSet().encode(w)
	got, err := w.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if !bytes.Equal(got, []byte{0x00, 0x00}) {
		t.Errorf("encode = %x, want 0000", got)
	}
}

func TestPrivilege_String(t *testing.T) {
	tests := []struct {
		p    Privilege
		want string
	}{
		{PrivilegeJoinChannel, "join_channel"},
		{PrivilegePublishAudio, "publish_audio"},
		{PrivilegePublishVideo, "publish_video"},
		{PrivilegePublishData, "publish_data"},
		{Privilege(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Privilege(%d).String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}
