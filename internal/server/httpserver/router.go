package httpserver

import (
	"net/http"

	"github.com/chankey/chankey-go/internal/core/service"
	"github.com/chankey/chankey-go/internal/server/httpserver/handler"
	"github.com/chankey/chankey-go/internal/telemetry/logger"
	"github.com/chankey/chankey-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Issuer mints tokens for the API endpoints.
	Issuer *service.IssuerService

	// Verifier authenticates API callers. A disabled verifier admits
	// everyone.
	Verifier *service.APIKeyVerifier

	// Limiters applies per-IP rate limiting. Nil disables it.
	Limiters *service.RateLimiterRegistry

	// Logger for request logging.
	Logger logger.Logger

	// Metrics serves /metrics and records request latency. Nil disables
	// the endpoint.
	Metrics *metric.Registry

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = allow all).
	CORSAllowedOrigins []string

	// EnableAudit enables audit logging for all requests.
	EnableAudit bool
}

// DefaultRouterConfig returns default router configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		EnableAudit: true,
	}
}

// NewRouter creates and configures the HTTP router with all routes and
// middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}
	verifier := cfg.Verifier
	if verifier == nil {
		verifier = service.NewAPIKeyVerifier("")
	}

	h := handler.New(cfg.Issuer, log)

	mux := http.NewServeMux()

	// Health endpoints - no authentication required
	probeHandler := Chain(h, RequestID(), Recover(log))
	mux.Handle("GET /health", probeHandler)
	mux.Handle("GET /ready", probeHandler)

	// Metrics endpoint - no envelope, Prometheus exposition format
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(), RequestID(), Recover(log)))
	}

	// Issuance endpoints - authenticated and rate limited
	// Order: Recover -> CORS -> RequestID -> Observe -> RateLimit -> Audit -> Auth -> Handler
	issueMiddlewares := []Middleware{
		Recover(log),
		CORS(cfg.CORSAllowedOrigins),
		RequestID(),
	}
	if cfg.Metrics != nil {
		issueMiddlewares = append(issueMiddlewares, Observe(cfg.Metrics))
	}
	if cfg.Limiters != nil {
		issueMiddlewares = append(issueMiddlewares, RateLimit(cfg.Limiters))
	}
	if cfg.EnableAudit {
		issueMiddlewares = append(issueMiddlewares, Audit(log))
	}
	issueMiddlewares = append(issueMiddlewares, APIKeyAuth(verifier))

	issueHandler := Chain(h, issueMiddlewares...)
	mux.Handle("POST /v1/tokens/rtc", issueHandler)
	mux.Handle("POST /v1/tokens/rtm", issueHandler)

	return mux
}
