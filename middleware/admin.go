package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminOnly 后台接口权限校验，需在 JWTAuth 之后使用
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentUserID(c) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"code": http.StatusUnauthorized, "message": "请先登录"})
			c.Abort()
			return
		}
		if !IsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{"code": http.StatusForbidden, "message": "权限不足"})
			c.Abort()
			return
		}
		c.Next()
	}
}
