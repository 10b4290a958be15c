package middlewares

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/review-app/utils"
	"golang.org/x/time/rate"
)

var errTooManyRequests = errors.New("too many requests, please slow down")

// RateLimiter is a sliding window limiter keyed by client IP.
type RateLimiter struct {
	rate      int
	interval  time.Duration
	ips       map[string][]time.Time
	lastSweep time.Time
	mu        sync.Mutex
}

func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		rate:     rate,
		interval: interval,
		ips:      make(map[string][]time.Time),
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			utils.RespondError(c, http.StatusTooManyRequests, errTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := now.Add(-rl.interval)
	if now.Sub(rl.lastSweep) >= rl.interval {
		rl.sweep(cutoff)
		rl.lastSweep = now
	}

	valid := rl.ips[ip][:0]
	for _, t := range rl.ips[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.rate {
		rl.ips[ip] = valid
		return false
	}

	rl.ips[ip] = append(valid, now)
	return true
}

// sweep drops clients with no request inside the window.
func (rl *RateLimiter) sweep(cutoff time.Time) {
	for ip, times := range rl.ips {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(rl.ips, ip)
		}
	}
}

// WriteLimiter throttles mutating requests with one token bucket per IP.
// A client idle long enough to refill its bucket is forgotten.
type WriteLimiter struct {
	every     time.Duration
	burst     int
	visitors  map[string]*visitor
	lastSweep time.Time
	mu        sync.Mutex
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewWriteLimiter(every time.Duration, burst int) *WriteLimiter {
	return &WriteLimiter{
		every:    every,
		burst:    burst,
		visitors: make(map[string]*visitor),
	}
}

func (wl *WriteLimiter) limiter(ip string, now time.Time) *rate.Limiter {
	wl.mu.Lock()
	defer wl.mu.Unlock()

	idle := wl.every * time.Duration(wl.burst)
	if now.Sub(wl.lastSweep) >= idle {
		for key, v := range wl.visitors {
			if now.Sub(v.lastSeen) >= idle {
				delete(wl.visitors, key)
			}
		}
		wl.lastSweep = now
	}

	v, ok := wl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(wl.every), wl.burst)}
		wl.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (wl *WriteLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		now := time.Now()
		if !wl.limiter(c.ClientIP(), now).AllowN(now, 1) {
			utils.RespondError(c, http.StatusTooManyRequests, errTooManyRequests)
			c.Abort()
			return
		}
		c.Next()
	}
}
