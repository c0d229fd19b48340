package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"campsite-reservation/internal/handler/httperr"
	"campsite-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter hands out one token bucket per client IP. Buckets idle long
// enough to have refilled completely are dropped, since a fresh bucket is
// indistinguishable from them.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	every     rate.Limit
	burst     int
	idleAfter time.Duration
	lastPrune time.Time
	now       func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter returns nil when cfg disables limiting.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	if cfg.WritesPerMinute <= 0 {
		return nil
	}
	interval := time.Minute / time.Duration(cfg.WritesPerMinute)
	burst := max(cfg.Burst, 1)
	return &RateLimiter{
		limiters:  make(map[string]*clientLimiter),
		every:     rate.Every(interval),
		burst:     burst,
		idleAfter: max(time.Duration(burst)*interval, time.Minute),
		now:       time.Now,
	}
}

func (l *RateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPrune) >= l.idleAfter {
		l.prune(now)
	}

	cl, ok := l.limiters[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.every, l.burst)}
		l.limiters[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// callers hold mu
func (l *RateLimiter) prune(now time.Time) {
	for ip, cl := range l.limiters {
		if now.Sub(cl.lastSeen) >= l.idleAfter {
			delete(l.limiters, ip)
		}
	}
	l.lastPrune = now
}

// Handler rejects requests over the client's budget with 429. A nil limiter lets everything through.
func (l *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}
		ip := c.ClientIP()
		if !l.limiter(ip).Allow() {
			slog.Warn("rate limit exceeded", "ip", ip, "path", c.FullPath())

			resp := httperr.Response{Status: http.StatusTooManyRequests}
			resp.Error.Message = "Too many requests"
			c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
			return
		}
		c.Next()
	}
}
