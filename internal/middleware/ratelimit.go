package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// InMemoryRateLimiter enforces a sliding-window request limit per key
// (client IP for the public API, user ID where a handler wants finer grain).
type InMemoryRateLimiter struct {
	mu       sync.Mutex
	seen     map[string][]time.Time
	limit    int
	window   time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

func NewInMemoryRateLimiter(limit int, window time.Duration) *InMemoryRateLimiter {
	l := &InMemoryRateLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
		done:   make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Stop ends the background sweep. The limiter itself keeps working; Allow
// prunes its own key on every call.
func (l *InMemoryRateLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

func (l *InMemoryRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := time.Now().Add(-l.window)
	live := l.seen[key][:0]
	for _, t := range l.seen[key] {
		if t.After(cutoff) {
			live = append(live, t)
		}
	}
	if len(live) >= l.limit {
		l.seen[key] = live
		return false
	}
	l.seen[key] = append(live, time.Now())
	return true
}

// sweep drops fully-expired keys so idle clients don't accumulate. Runs until
// Stop is called.
func (l *InMemoryRateLimiter) sweep() {
	tick := time.NewTicker(time.Minute)
	defer tick.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-tick.C:
		}
		l.mu.Lock()
		cutoff := time.Now().Add(-l.window)
		for k, times := range l.seen {
			expired := true
			for _, t := range times {
				if t.After(cutoff) {
					expired = false
					break
				}
			}
			if expired {
				delete(l.seen, k)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit returns a middleware that limits by client IP.
func RateLimit(limiter *InMemoryRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
