package api

import (
	"net/http"
	"time"

	"costchef/middleware"

	"github.com/gin-gonic/gin"
)

// getCookieOptions 根据运行模式返回 Cookie 的安全选项
// release 模式下启用 Secure（仅 HTTPS 传输），并设置 SameSite 以防止 CSRF
func getCookieOptions() (secure bool, sameSite http.SameSite) {
	if gin.Mode() == gin.ReleaseMode {
		secure = true
	}
	// SameSite=Lax: 防止跨站 POST 请求携带 Cookie，同时允许同站导航
	sameSite = http.SameSiteLaxMode
	return
}

// setSessionCookie 写入会话 Cookie（HttpOnly）
func setSessionCookie(c *gin.Context, token string, expire time.Duration) {
	secure, sameSite := getCookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.SessionCookie, token, int(expire.Seconds()), "/", "", secure, true)
}

// clearSessionCookie 清除会话 Cookie
func clearSessionCookie(c *gin.Context) {
	secure, sameSite := getCookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", secure, true)
}
