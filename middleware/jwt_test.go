package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"costchef/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager() *TokenManager {
	return NewTokenManager(config.JWTConfig{Secret: "test-jwt-secret-key", ExpireTime: time.Hour})
}

func TestGenerateToken(t *testing.T) {
	m := newTestTokenManager()

	token, err := m.GenerateToken(1, "julia@example.com", true)
	require.NoError(t, err)
	assert.Greater(t, len(token), 20)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "julia@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestParseToken(t *testing.T) {
	m := newTestTokenManager()

	_, err := m.ParseToken("")
	assert.Error(t, err)
	_, err = m.ParseToken("not.a.valid.jwt")
	assert.Error(t, err)
	_, err = m.ParseToken("eyJhbGciOiJmb29iIn0.xxxx.yyyy")
	assert.Error(t, err)

	// 其他密钥签发的 token
	other := NewTokenManager(config.JWTConfig{Secret: "another-secret"})
	token, _ := other.GenerateToken(1, "a@example.com", false)
	_, err = m.ParseToken(token)
	assert.Error(t, err)

	// 已过期
	expired := &TokenManager{secret: []byte("test-jwt-secret-key"), expire: -time.Minute}
	token, _ = expired.GenerateToken(1, "a@example.com", false)
	_, err = m.ParseToken(token)
	assert.Error(t, err)
}

func TestJWTAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestTokenManager()

	router := gin.New()
	router.Use(JWTAuth(m))
	router.GET("/protected", func(c *gin.Context) {
		c.String(200, "id:%d", GetCurrentUserID(c))
	})

	// 无 token
	req := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "401")

	// 非 Bearer
	req2 := httptest.NewRequest("GET", "/protected", nil)
	req2.Header.Set("Authorization", "Basic xyz")
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)
	assert.Equal(t, http.StatusUnauthorized, w2.Code)

	// 仅 Bearer 无 token
	req3 := httptest.NewRequest("GET", "/protected", nil)
	req3.Header.Set("Authorization", "Bearer ")
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req3)
	assert.Equal(t, http.StatusUnauthorized, w3.Code)

	token, _ := m.GenerateToken(42, "user42@example.com", false)

	// Bearer
	req4 := httptest.NewRequest("GET", "/protected", nil)
	req4.Header.Set("Authorization", "Bearer "+token)
	w4 := httptest.NewRecorder()
	router.ServeHTTP(w4, req4)
	assert.Equal(t, 200, w4.Code)
	assert.Equal(t, "id:42", w4.Body.String())

	// 会话 Cookie
	req5 := httptest.NewRequest("GET", "/protected", nil)
	req5.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w5 := httptest.NewRecorder()
	router.ServeHTTP(w5, req5)
	assert.Equal(t, 200, w5.Code)
	assert.Equal(t, "id:42", w5.Body.String())
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestTokenManager()

	router := gin.New()
	router.Use(OptionalAuth(m))
	router.GET("/", func(c *gin.Context) {
		c.String(200, "id:%d", GetCurrentUserID(c))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, "id:0", w.Body.String())

	token, _ := m.GenerateToken(7, "a@example.com", false)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "id:7", w.Body.String())
}

func TestGetCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, uint(0), GetCurrentUserID(c))

	c.Set("userID", uint(99))
	assert.Equal(t, uint(99), GetCurrentUserID(c))
}
