package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/chankey/chankey-go/internal/core/domain"
	"github.com/chankey/chankey-go/internal/telemetry/logger"
	"github.com/chankey/chankey-go/internal/telemetry/metric"
	"github.com/chankey/chankey-go/pkg/rtctoken"
)

// IssuerConfig holds configuration for IssuerService.
type IssuerConfig struct {
	// Credentials is the application identity used to sign every token.
	Credentials domain.AppCredentials

	// Format selects which wire format this deployment issues.
	Format domain.TokenFormat

	// DefaultTTL is applied when a request omits the ttl (0 = 3600s).
	DefaultTTL uint32

	// MaxTTL caps requested lifetimes (0 = no cap).
	MaxTTL uint32

	// Logger receives issuance logs. Nil disables logging.
	Logger logger.Logger

	// Metrics receives issuance counters. Nil disables metrics.
	Metrics *metric.Registry

	// Clock supplies the issuance timestamp (defaults to time.Now).
	Clock func() time.Time

	// TokenOptions are passed through to the token builders.
	TokenOptions []rtctoken.Option
}

// IssuerService mints RTC and RTM access tokens according to deployment
// policy. It is safe for concurrent use.
type IssuerService struct {
	cfg IssuerConfig
	log logger.Logger
	now func() time.Time
}

// NewIssuerService creates an IssuerService after validating the
// deployment configuration. Bad credentials or an unknown format are
// startup failures, not per-request ones.
func NewIssuerService(cfg IssuerConfig) (*IssuerService, error) {
	if err := cfg.Credentials.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Format.Valid() {
		return nil, domain.ErrUnknownFormat.WithDetails("got " + string(cfg.Format))
	}
	if cfg.DefaultTTL == 0 {
		cfg.DefaultTTL = rtctoken.DefaultTTL
	}

	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}

	return &IssuerService{cfg: cfg, log: log, now: now}, nil
}

// IssueRTCRequest contains parameters for RTC token issuance.
type IssueRTCRequest struct {
	// ChannelName is the channel the token grants access to. Required.
	ChannelName string

	// SubjectID is the string identity of the joining user. When empty
	// and UID is non-zero, the decimal rendering of UID is used. Both
	// empty means a wildcard token valid for any user.
	SubjectID string

	// UID is the numeric identity of the joining user.
	UID uint32

	// Role is "publisher" or "subscriber". Empty defaults to publisher.
	Role string

	// TTLSeconds is the token lifetime. Zero applies the default.
	TTLSeconds uint32
}

// IssueRTMRequest contains parameters for RTM token issuance.
type IssueRTMRequest struct {
	// UserID is the messaging identity. Required.
	UserID string

	// TTLSeconds is the token lifetime. Zero applies the default.
	TTLSeconds uint32
}

// IssueResponse is the result of a successful issuance.
type IssueResponse struct {
	// Token is the serialized "007"-prefixed token.
	Token string

	// ExpiresAt is the Unix time at which the token lapses.
	ExpiresAt uint32

	// Format is the wire format the token was issued in.
	Format domain.TokenFormat
}

// IssueRTC mints a channel access token.
func (s *IssuerService) IssueRTC(ctx context.Context, req *IssueRTCRequest) (*IssueResponse, error) {
	if req.ChannelName == "" {
		return nil, s.fail(domain.ErrMissingArgument.WithDetails("channel_name is required"))
	}

	role, err := parseRole(req.Role)
	if err != nil {
		return nil, s.fail(err)
	}

	subject := req.SubjectID
	if subject == "" && req.UID != 0 {
		subject = strconv.FormatUint(uint64(req.UID), 10)
	}

	ttl := s.clampTTL(req.TTLSeconds)
	issuedAt := uint32(s.now().Unix())
	opts := append(s.cfg.TokenOptions[:len(s.cfg.TokenOptions):len(s.cfg.TokenOptions)],
		rtctoken.WithIssuedAt(issuedAt))

	var token string
	creds := s.cfg.Credentials.Token()
	switch s.cfg.Format {
	case domain.FormatLegacy:
		token, err = rtctoken.IssueRTCLegacy(creds, req.ChannelName, subject, role, ttl, opts...)
	default:
		token, err = rtctoken.IssueRTC(creds, req.ChannelName, subject, role, ttl, opts...)
	}
	if err != nil {
		return nil, s.fail(mapTokenError(err))
	}

	s.observe(role)
	s.log.WithContext(ctx).Debug("issued rtc token",
		"channel", req.ChannelName,
		"role", role.String(),
		"format", string(s.cfg.Format),
		"ttl_seconds", ttl,
	)

	return &IssueResponse{
		Token:     token,
		ExpiresAt: issuedAt + ttl,
		Format:    s.cfg.Format,
	}, nil
}

// IssueRTM mints a messaging token. Messaging authorization is a
// publisher grant on a channel named after the user.
func (s *IssuerService) IssueRTM(ctx context.Context, req *IssueRTMRequest) (*IssueResponse, error) {
	if req.UserID == "" {
		return nil, s.fail(domain.ErrMissingArgument.WithDetails("user_id is required"))
	}

	resp, err := s.IssueRTC(ctx, &IssueRTCRequest{
		ChannelName: req.UserID,
		SubjectID:   req.UserID,
		Role:        rtctoken.RolePublisher.String(),
		TTLSeconds:  req.TTLSeconds,
	})
	if err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).Debug("issued rtm token", "format", string(s.cfg.Format))
	return resp, nil
}

// clampTTL applies the default and the deployment cap.
func (s *IssuerService) clampTTL(ttl uint32) uint32 {
	if ttl == 0 {
		ttl = s.cfg.DefaultTTL
	}
	if s.cfg.MaxTTL > 0 && ttl > s.cfg.MaxTTL {
		ttl = s.cfg.MaxTTL
	}
	return ttl
}

// observe increments the success counter.
func (s *IssuerService) observe(role rtctoken.Role) {
	if s.cfg.Metrics == nil {
		return
	}
	s.cfg.Metrics.TokensIssued.WithLabelValues(string(s.cfg.Format), role.String()).Inc()
}

// fail counts and logs a failed issuance, returning err unchanged.
func (s *IssuerService) fail(err error) error {
	if s.cfg.Metrics != nil {
		code := domain.GetErrorCode(err)
		if code == "" {
			code = domain.ErrInternalServer.Code
		}
		s.cfg.Metrics.IssueErrors.WithLabelValues(code).Inc()
	}
	s.log.Warn("token issuance failed", "error", err)
	return err
}

// parseRole maps a request role string onto the fixed role policy.
func parseRole(s string) (rtctoken.Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "publisher":
		return rtctoken.RolePublisher, nil
	case "subscriber":
		return rtctoken.RoleSubscriber, nil
	default:
		return 0, domain.ErrUnknownRole.WithDetails("got " + s)
	}
}

// mapTokenError translates wire-core sentinel errors into domain errors
// so transport layers see a single taxonomy.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, rtctoken.ErrMissingConfiguration):
		return domain.ErrCredentialsMissing.WithCause(err)
	case errors.Is(err, rtctoken.ErrInvalidCredentials):
		return domain.ErrCredentialsInvalid.WithCause(err)
	case errors.Is(err, rtctoken.ErrEncodingOverflow):
		return domain.ErrFieldOverflow.WithCause(err)
	default:
		return domain.ErrInternalServer.WithCause(err)
	}
}
