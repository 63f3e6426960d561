package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAdminOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestTokenManager()

	router := gin.New()
	router.Use(JWTAuth(m), AdminOnly())
	router.GET("/admin/users", func(c *gin.Context) {
		c.String(200, "ok")
	})

	do := func(isAdmin bool) *httptest.ResponseRecorder {
		token, _ := m.GenerateToken(1, "a@example.com", isAdmin)
		req := httptest.NewRequest("GET", "/admin/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do(true).Code)

	w := do(false)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "权限不足")
}

func TestAdminOnly_WithoutLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AdminOnly())
	router.GET("/admin/users", func(c *gin.Context) {
		c.String(200, "ok")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin/users", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
