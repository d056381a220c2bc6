package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// slidingWindow 按 key 记录窗口内的请求时间
type slidingWindow struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	hits   map[string][]time.Time
}

func newSlidingWindow(max int, window time.Duration) *slidingWindow {
	return &slidingWindow{max: max, window: window, hits: make(map[string][]time.Time)}
}

// allow 窗口内未达上限时记录本次请求并放行
func (s *slidingWindow) allow(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := prune(s.hits[key], now.Add(-s.window))
	if len(recent) >= s.max {
		s.hits[key] = recent
		return false
	}
	s.hits[key] = append(recent, now)
	return true
}

// sweep 清理过期 key
func (s *slidingWindow) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-s.window)
	for key, ts := range s.hits {
		if recent := prune(ts, cutoff); len(recent) == 0 {
			delete(s.hits, key)
		} else {
			s.hits[key] = recent
		}
	}
}

func prune(ts []time.Time, cutoff time.Time) []time.Time {
	out := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// LoginRateLimit 登录/注册接口限流，每个 IP 在 window 内最多 maxAttempts 次，超过返回 429
func LoginRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	limiter := newSlidingWindow(maxAttempts, window)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for now := range ticker.C {
			limiter.sweep(now)
		}
	}()

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "登录尝试过于频繁，请稍后再试",
			})
			return
		}
		c.Next()
	}
}
