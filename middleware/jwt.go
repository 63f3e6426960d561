package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"costchef/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie 浏览器会话 Cookie 名称
const SessionCookie = "session_token"

const (
	ctxUserID  = "userID"
	ctxEmail   = "email"
	ctxIsAdmin = "isAdmin"
)

// Claims JWT 载荷
type Claims struct {
	UserID  uint   `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// TokenManager 签发与校验会话 token
type TokenManager struct {
	secret []byte
	expire time.Duration
}

// NewTokenManager 根据配置创建 TokenManager
func NewTokenManager(cfg config.JWTConfig) *TokenManager {
	expire := cfg.ExpireTime
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(cfg.Secret), expire: expire}
}

// Expire token 有效期
func (m *TokenManager) Expire() time.Duration {
	return m.expire
}

// GenerateToken 生成 token
func (m *TokenManager) GenerateToken(userID uint, email string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "costchef",
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ParseToken 解析并校验 token
func (m *TokenManager) ParseToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token 为空")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("无效的 token")
	}
	return claims, nil
}

// tokenFromRequest 优先读取 Authorization: Bearer，其次读取会话 Cookie
func tokenFromRequest(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ""
		}
		return strings.TrimSpace(parts[1])
	}
	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie
}

// JWTAuth 登录校验中间件
func JWTAuth(m *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.ParseToken(tokenFromRequest(c))
		if err != nil {
			c.JSON(401, gin.H{
				"code":    401,
				"message": "请先登录",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// OptionalAuth 有合法 token 时写入当前用户，否则匿名放行
func OptionalAuth(m *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := m.ParseToken(tokenFromRequest(c)); err == nil {
			c.Set(ctxUserID, claims.UserID)
			c.Set(ctxEmail, claims.Email)
			c.Set(ctxIsAdmin, claims.IsAdmin)
		}
		c.Next()
	}
}

// GetCurrentUserID 获取当前用户 ID，未登录返回 0
func GetCurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// IsAdmin 当前用户是否管理员
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxIsAdmin)
}
