package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// attemptLimiter 按 IP 记录窗口内的登录尝试时间
type attemptLimiter struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	maxAttempts int
	window      time.Duration
}

func newAttemptLimiter(maxAttempts int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// withinWindow 原地保留 cutoff 之后的记录
func withinWindow(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// allow 记录一次尝试，超出上限返回 false（超限的尝试不计入）
func (l *attemptLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := withinWindow(l.attempts[ip], now.Add(-l.window))
	if len(ts) >= l.maxAttempts {
		l.attempts[ip] = ts
		return false
	}
	l.attempts[ip] = append(ts, now)
	return true
}

// sweep 清理过期记录，窗口内无尝试的 IP 直接移除
func (l *attemptLimiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	for ip, ts := range l.attempts {
		if kept := withinWindow(ts, cutoff); len(kept) > 0 {
			l.attempts[ip] = kept
		} else {
			delete(l.attempts, ip)
		}
	}
}

// cleanupLoop 每 interval 清理一次，ctx 结束时退出
func (l *attemptLimiter) cleanupLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.sweep(now)
		}
	}
}

// LoginRateLimit 登录接口限流中间件
// 每 IP 在 window 内最多 maxAttempts 次尝试，超过则返回 429；ctx 结束后停止后台清理
func LoginRateLimit(ctx context.Context, maxAttempts int, window time.Duration) gin.HandlerFunc {
	limiter := newAttemptLimiter(maxAttempts, window)
	go limiter.cleanupLoop(ctx, time.Minute)

	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP(), time.Now()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "登录尝试过于频繁，请稍后再试",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
