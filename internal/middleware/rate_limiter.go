package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per client IP, with a tighter limit for
// login attempts
type RateLimiter struct {
	mu           sync.Mutex
	ipLimiters   map[string]*rate.Limiter
	authLimiters map[string]*rate.Limiter
	ipRate       rate.Limit
	authRate     rate.Limit
	ipBurst      int
	authBurst    int
	cleanup      *time.Ticker
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(ipRequestsPerSecond, authRequestsPerMinute float64, ipBurst, authBurst int) *RateLimiter {
	rl := &RateLimiter{
		ipLimiters:   make(map[string]*rate.Limiter),
		authLimiters: make(map[string]*rate.Limiter),
		ipRate:       rate.Limit(ipRequestsPerSecond),
		authRate:     rate.Limit(authRequestsPerMinute / 60),
		ipBurst:      ipBurst,
		authBurst:    authBurst,
		cleanup:      time.NewTicker(5 * time.Minute),
	}

	go rl.cleanupLoop()

	return rl
}

// cleanupLoop periodically drops idle limiters so the maps do not grow forever
func (rl *RateLimiter) cleanupLoop() {
	for range rl.cleanup.C {
		rl.mu.Lock()
		rl.ipLimiters = make(map[string]*rate.Limiter)
		rl.authLimiters = make(map[string]*rate.Limiter)
		rl.mu.Unlock()
	}
}

// Stop stops the rate limiter cleanup
func (rl *RateLimiter) Stop() {
	rl.cleanup.Stop()
}

func (rl *RateLimiter) limiterFor(limiters map[string]*rate.Limiter, key string, r rate.Limit, burst int) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := limiters[key]
	if !ok {
		limiter = rate.NewLimiter(r, burst)
		limiters[key] = limiter
	}
	return limiter
}

// IPRateLimiterMiddleware limits requests based on client IP
func (rl *RateLimiter) IPRateLimiterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.limiterFor(rl.ipLimiters, c.ClientIP(), rl.ipRate, rl.ipBurst)
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthRateLimiterMiddleware applies the tighter per-IP limit for login and
// signup attempts
func (rl *RateLimiter) AuthRateLimiterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.limiterFor(rl.authLimiters, c.ClientIP(), rl.authRate, rl.authBurst)
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts, try again later"})
			c.Abort()
			return
		}
		c.Next()
	}
}
