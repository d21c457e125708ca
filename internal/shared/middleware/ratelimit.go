package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	sharedError "github.com/adeyemik/union-register/go-api-server/internal/shared/error"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitExceeded is the response for throttled verify attempts.
var RateLimitExceeded = sharedError.ErrorResponse{
	Status:  http.StatusTooManyRequests,
	Code:    "AUTH-429",
	Message: "Too many attempts. Try again shortly.",
}

// clientLimiter is a token bucket plus its last-use time for eviction.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// VerifyRateLimiter throttles access-code verification per client IP.
// The 6-character code space is the only brute-force deterrent the register
// has, so the verify endpoints must not be free to hammer.
type VerifyRateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	perMin   int
	burst    int
	maxIdle  time.Duration
	lastSwep time.Time
}

// NewVerifyRateLimiter allows perMin attempts per minute with the given burst
// per client IP.
func NewVerifyRateLimiter(perMin, burst int) *VerifyRateLimiter {
	return &VerifyRateLimiter{
		clients:  make(map[string]*clientLimiter),
		perMin:   perMin,
		burst:    burst,
		maxIdle:  10 * time.Minute,
		lastSwep: time.Now(),
	}
}

// Middleware returns the gin handler enforcing the limit.
func (rl *VerifyRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		if !rl.allow(ip) {
			slog.Warn("verify rate limit exceeded",
				"client_ip", ip,
				"path", c.Request.URL.Path,
			)
			c.JSON(RateLimitExceeded.Status, RateLimitExceeded)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *VerifyRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	// Evict idle buckets opportunistically so the map stays bounded
	if now.Sub(rl.lastSwep) > rl.maxIdle {
		for key, client := range rl.clients {
			if now.Sub(client.lastSeen) > rl.maxIdle {
				delete(rl.clients, key)
			}
		}
		rl.lastSwep = now
	}

	client, ok := rl.clients[ip]
	if !ok {
		client = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.perMin)), rl.burst),
		}
		rl.clients[ip] = client
	}
	client.lastSeen = now

	return client.limiter.Allow()
}
