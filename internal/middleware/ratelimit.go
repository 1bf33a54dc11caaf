package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter tracks request timestamps per key over a sliding window.
// Point-of-sale terminals retry aggressively on flaky links; the sale-key
// guard keeps retries safe, this keeps them polite.
type RateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	r := &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
	go r.sweep()
	return r
}

// prune drops timestamps older than the window. Caller must hold mu.
func (r *RateLimiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-r.window)
	kept := r.requests[key][:0]
	for _, ts := range r.requests[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) == 0 {
		delete(r.requests, key)
		return nil
	}
	r.requests[key] = kept
	return kept
}

func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	recent := r.prune(key, now)
	if len(recent) >= r.limit {
		return false
	}
	r.requests[key] = append(recent, now)
	return true
}

// sweep evicts idle keys so the map does not grow with one-off callers.
func (r *RateLimiter) sweep() {
	for now := range time.Tick(time.Minute) {
		r.mu.Lock()
		for key := range r.requests {
			r.prune(key, now)
		}
		r.mu.Unlock()
	}
}

// RateLimit limits by client IP.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
