package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics.
type Registry struct {
	// TokensIssued counts successfully issued tokens by format and role.
	TokensIssued *prometheus.CounterVec

	// IssueErrors counts failed issuance attempts by error code.
	IssueErrors *prometheus.CounterVec

	// RequestDuration samples HTTP request latency by path and status.
	RequestDuration *prometheus.HistogramVec

	reg *prometheus.Registry
}

// NewRegistry creates a metrics registry with all collectors registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	r := &Registry{
		TokensIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chankey",
			Name:      "tokens_issued_total",
			Help:      "Number of access tokens issued.",
		}, []string{"format", "role"}),
		IssueErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chankey",
			Name:      "issue_errors_total",
			Help:      "Number of failed token issuance attempts.",
		}, []string{"code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "chankey",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "status"}),
		reg: reg,
	}

	reg.MustRegister(r.TokensIssued, r.IssueErrors, r.RequestDuration)
	return r
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
