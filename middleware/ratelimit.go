package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// IPRateLimiter allows limit requests per client IP within a sliding window.
// A non-positive limit disables limiting.
type IPRateLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
}

func NewIPRateLimiter(limit int, window time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Allow records a request from ip and reports whether it is within the limit.
func (rl *IPRateLimiter) Allow(ip string) bool {
	ok, _ := rl.take(ip)
	return ok
}

// take is Allow that also returns how long a rejected client has to wait.
func (rl *IPRateLimiter) take(ip string) (bool, time.Duration) {
	if rl.limit <= 0 {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	recent := inWindow(rl.requests[ip], now.Add(-rl.window))
	if len(recent) >= rl.limit {
		rl.requests[ip] = recent
		return false, recent[0].Add(rl.window).Sub(now)
	}

	rl.requests[ip] = append(recent, now)
	return true, 0
}

// Sweep forgets clients without requests inside the window.
func (rl *IPRateLimiter) Sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-rl.window)
	for ip, times := range rl.requests {
		if len(inWindow(times, cutoff)) == 0 {
			delete(rl.requests, ip)
		}
	}
}

// inWindow drops the leading timestamps not after cutoff; times is ascending.
func inWindow(times []time.Time, cutoff time.Time) []time.Time {
	for i, t := range times {
		if t.After(cutoff) {
			return times[i:]
		}
	}
	return times[:0]
}

func RateLimit(rl *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, wait := rl.take(c.ClientIP())
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
