package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 短窗口 200ms，最多 2 次
	router := gin.New()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	router.Use(LoginRateLimit(ctx, 2, 200*time.Millisecond))
	router.POST("/account/login", func(c *gin.Context) {
		c.String(200, "ok")
	})

	// 同一 IP 连续 3 次，第 3 次应返回 429
	doReq := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/account/login", nil)
		req.Header.Set("X-Real-IP", ip)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w1 := doReq("192.168.1.1")
	w2 := doReq("192.168.1.1")
	w3 := doReq("192.168.1.1")

	assert.Equal(t, 200, w1.Code)
	assert.Equal(t, 200, w2.Code)
	assert.Equal(t, http.StatusTooManyRequests, w3.Code)
	assert.Contains(t, w3.Body.String(), "频繁")

	// 窗口过后恢复
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, 200, doReq("192.168.1.1").Code)

	// 不同 IP 互不影响
	w4 := doReq("192.168.1.2")
	w5 := doReq("192.168.1.2")
	assert.Equal(t, 200, w4.Code)
	assert.Equal(t, 200, w5.Code)
}

func TestAttemptLimiter_Sweep(t *testing.T) {
	l := newAttemptLimiter(2, time.Minute)
	now := time.Now()

	assert.True(t, l.allow("10.0.0.1", now.Add(-2*time.Minute)))
	assert.True(t, l.allow("10.0.0.2", now.Add(-2*time.Minute)))
	assert.True(t, l.allow("10.0.0.2", now))

	l.sweep(now)
	assert.NotContains(t, l.attempts, "10.0.0.1")
	assert.Len(t, l.attempts["10.0.0.2"], 1)
}

func TestAttemptLimiter_CleanupLoopStops(t *testing.T) {
	l := newAttemptLimiter(2, time.Millisecond)
	l.allow("10.0.0.1", time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.cleanupLoop(ctx, 5*time.Millisecond)
		close(done)
	}()

	// 定时清理生效
	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.attempts) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanupLoop 未在 ctx 取消后退出")
	}
}
