package rtctoken

// Privilege identifies a single permitted action inside a channel.
// The numeric values are part of the wire format.
type Privilege uint16

// Privileges understood by the RTC backend.
const (
	PrivilegeJoinChannel  Privilege = 1
	PrivilegePublishAudio Privilege = 2
	PrivilegePublishVideo Privilege = 3
	PrivilegePublishData  Privilege = 4
)

// String returns the privilege name.
func (p Privilege) String() string {
	switch p {
	case PrivilegeJoinChannel:
		return "join_channel"
	case PrivilegePublishAudio:
		return "publish_audio"
	case PrivilegePublishVideo:
		return "publish_video"
	case PrivilegePublishData:
		return "publish_data"
	default:
		return "unknown"
	}
}

// PrivilegeSet maps privileges to absolute expiry timestamps (Unix epoch
// seconds). Iteration order is insertion order and is never re-sorted:
// the signature covers the encoded bytes, so a reordering would turn a
// valid token into a verification failure.
type PrivilegeSet struct {
	order  []Privilege
	expire map[Privilege]uint32
}

// NewPrivilegeSet returns an empty PrivilegeSet.
func NewPrivilegeSet() *PrivilegeSet {
	return &PrivilegeSet{expire: make(map[Privilege]uint32)}
}

// Add inserts a privilege with its expiry, or overwrites the expiry of an
// already-present privilege without changing its position.
func (ps *PrivilegeSet) Add(p Privilege, expireAt uint32) {
	if _, ok := ps.expire[p]; !ok {
		ps.order = append(ps.order, p)
	}
	ps.expire[p] = expireAt
}

// Get returns the expiry for p and whether p is present.
func (ps *PrivilegeSet) Get(p Privilege) (uint32, bool) {
	e, ok := ps.expire[p]
	return e, ok
}

// Len returns the number of granted privileges.
func (ps *PrivilegeSet) Len() int {
	return len(ps.order)
}

// Privileges returns the granted privileges in insertion order.
func (ps *PrivilegeSet) Privileges() []Privilege {
	out := make([]Privilege, len(ps.order))
	copy(out, ps.order)
	return out
}

// encode writes count:u16 followed by (id:u16, expiry:u32) pairs in
// insertion order. Both formats share this pair shape.
func (ps *PrivilegeSet) encode(w *Writer) {
	w.PutUint16(uint16(len(ps.order)))
	for _, p := range ps.order {
		w.PutUint16(uint16(p))
		w.PutUint32(ps.expire[p])
	}
}
