package rtctoken

import (
	"fmt"
	"sync"
)

// ServiceTypeRTC is the stable service-type code of the RTC capability
// domain, used both for dispatch and as the encoded discriminant.
const ServiceTypeRTC uint16 = 1

// Service is one capability domain packed into a modern-format token.
// New domains are added as new implementations plus a Register call;
// the token builder itself never changes.
type Service interface {
	// ServiceType returns the stable numeric service-type code.
	ServiceType() uint16

	// Pack appends the service's wire encoding, starting with the
	// service-type code, to w.
	Pack(w *Writer)
}

// RTCService grants channel privileges to one subject in one channel.
type RTCService struct {
	ChannelName string
	SubjectID   string
	Grants      *PrivilegeSet
}

// NewRTCService returns an RTC service descriptor with an empty grant set.
func NewRTCService(channelName, subjectID string) *RTCService {
	return &RTCService{
		ChannelName: channelName,
		SubjectID:   subjectID,
		Grants:      NewPrivilegeSet(),
	}
}

// AddPrivilege grants p until expireAt (Unix epoch seconds).
func (s *RTCService) AddPrivilege(p Privilege, expireAt uint32) {
	s.Grants.Add(p, expireAt)
}

// ServiceType implements Service.
func (s *RTCService) ServiceType() uint16 {
	return ServiceTypeRTC
}

// Pack implements Service.
func (s *RTCService) Pack(w *Writer) {
	w.PutUint16(ServiceTypeRTC)
	w.PutString(s.ChannelName)
	w.PutString(s.SubjectID)
	s.Grants.encode(w)
}

// serviceRegistry maps service-type codes to constructors. Registration
// happens at init time; reads afterwards are lock-free in practice but the
// mutex keeps Register safe for tests.
var (
	registryMu      sync.RWMutex
	serviceRegistry = map[uint16]func() Service{
		ServiceTypeRTC: func() Service { return NewRTCService("", "") },
	}
)

// RegisterService registers a constructor for a service-type code.
// Registering an already-registered code is a programming error.
func RegisterService(code uint16, constructor func() Service) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := serviceRegistry[code]; ok {
		panic(fmt.Sprintf("rtctoken: service type %d already registered", code))
	}
	serviceRegistry[code] = constructor
}

// NewService constructs an empty service for a registered type code.
func NewService(code uint16) (Service, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	constructor, ok := serviceRegistry[code]
	if !ok {
		return nil, false
	}
	return constructor(), true
}
