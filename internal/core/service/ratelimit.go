package service

import (
	"golang.org/x/time/rate"

	"github.com/chankey/chankey-go/internal/core/domain"
	"github.com/chankey/chankey-go/pkg/cmap"
)

// RateLimiterRegistry manages per-client token-bucket limiters keyed by
// an opaque client identifier (typically the remote IP).
type RateLimiterRegistry struct {
	limiters *cmap.Map[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewRateLimiterRegistry creates a registry issuing limiters with the
// given sustained rate (requests per second) and burst size.
func NewRateLimiterRegistry(perSecond float64, burst int) *RateLimiterRegistry {
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiterRegistry{
		limiters: cmap.New[string, *rate.Limiter](),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

// Allow reports whether the client may proceed, consuming one token.
func (r *RateLimiterRegistry) Allow(clientKey string) error {
	if !r.getOrCreate(clientKey).Allow() {
		return domain.ErrRateLimited
	}
	return nil
}

// getOrCreate retrieves an existing limiter or installs a new one.
// A losing racer's fresh limiter is discarded by GetOrSet.
func (r *RateLimiterRegistry) getOrCreate(clientKey string) *rate.Limiter {
	if limiter, ok := r.limiters.Get(clientKey); ok {
		return limiter
	}
	limiter, _ := r.limiters.GetOrSet(clientKey, rate.NewLimiter(r.limit, r.burst))
	return limiter
}

// Len returns the number of tracked clients.
func (r *RateLimiterRegistry) Len() int {
	return r.limiters.Count()
}

// Clear removes all tracked limiters.
func (r *RateLimiterRegistry) Clear() {
	r.limiters.Clear()
}
