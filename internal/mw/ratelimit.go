package mw

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// perClientLimiter hands out one token bucket per client IP. Check-in
// stations and report dashboards share the same API surface, so the limit is
// generous but stops one misbehaving kiosk from hammering report
// recomputation.
type perClientLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newPerClientLimiter(r rate.Limit, burst int) *perClientLimiter {
	return &perClientLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    r,
		burst:    burst,
	}
}

func (p *perClientLimiter) get(ip string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.limiters[ip]
	if !ok {
		l = rate.NewLimiter(p.limit, p.burst)
		p.limiters[ip] = l
	}
	return l
}

// RateLimiter is a middleware for IP-based rate limiting.
func RateLimiter(r rate.Limit, burst int) gin.HandlerFunc {
	limiter := newPerClientLimiter(r, burst)
	return func(c *gin.Context) {
		if !limiter.get(c.ClientIP()).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
