package api

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RateLimiterConfig holds rate limiter configuration.
type RateLimiterConfig struct {
	RequestsPerMinute int
	BurstSize         int

	// Now overrides the clock in tests.
	Now func() time.Time
}

// tokenBucket implements a token bucket rate limiter.
type tokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

func (tb *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.tokens = min(tb.capacity, tb.tokens+elapsed*tb.refillRate)
	tb.lastRefill = now
}

// take consumes a token if one is available and reports the tokens left
// and the time the bucket is full again.
func (tb *tokenBucket) take(now time.Time) (ok bool, remaining int, full time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill(now)
	if tb.tokens >= 1 {
		tb.tokens--
		ok = true
	}
	full = now
	if missing := tb.capacity - tb.tokens; missing > 0 && tb.refillRate > 0 {
		full = now.Add(time.Duration(missing / tb.refillRate * float64(time.Second)))
	}
	return ok, int(tb.tokens), full
}

// RateLimiter manages per-client rate limiting.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	config  RateLimiterConfig
	idleTTL time.Duration
	now     func() time.Time
}

// NewRateLimiter creates a rate limiter. A zero BurstSize defaults to 10.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.BurstSize <= 0 {
		config.BurstSize = 10
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		config:  config,
		idleTTL: 5 * time.Minute,
		now:     now,
	}
}

// Run removes idle buckets every interval until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for ip, b := range rl.buckets {
		b.mu.Lock()
		idle := now.Sub(b.lastRefill) > rl.idleTTL
		b.mu.Unlock()
		if idle {
			delete(rl.buckets, ip)
		}
	}
}

func (rl *RateLimiter) bucket(ip string) *tokenBucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	b, ok := rl.buckets[ip]
	if !ok {
		b = &tokenBucket{
			tokens:     float64(rl.config.BurstSize),
			capacity:   float64(rl.config.BurstSize),
			refillRate: float64(rl.config.RequestsPerMinute) / 60,
			lastRefill: rl.now(),
		}
		rl.buckets[ip] = b
	}
	return b
}

// Allow consumes one request for ip.
func (rl *RateLimiter) Allow(ip string) bool {
	ok, _, _ := rl.bucket(ip).take(rl.now())
	return ok
}

// Middleware rejects requests over the limit with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := rl.now()
		ok, remaining, full := rl.bucket(clientIP(r)).take(now)

		h := w.Header()
		h.Set("X-RateLimit-Limit", strconv.Itoa(rl.config.RequestsPerMinute))
		h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		h.Set("X-RateLimit-Reset", strconv.FormatInt(full.Unix(), 10))

		if !ok {
			retryAfter := int(full.Sub(now).Seconds()) + 1
			h.Set("Retry-After", strconv.Itoa(retryAfter))
			respondError(w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED",
				"Rate limit exceeded. Try again in "+strconv.Itoa(retryAfter)+" seconds.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the client address, preferring the leftmost valid
// X-Forwarded-For entry, then X-Real-IP, then RemoteAddr.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); net.ParseIP(ip) != nil {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(ip) != nil {
		return ip
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}
	if net.ParseIP(ip) != nil {
		return ip
	}
	return "unknown"
}
