package api

import (
	"errors"
	"net/http"

	"costchef/pricing"
	"costchef/service"

	"github.com/gin-gonic/gin"
)

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	if err == nil || gin.Mode() == gin.ReleaseMode {
		return fallback
	}
	return fallback + ": " + err.Error()
}

// errorStatus 业务错误对应的 HTTP 状态码，未知错误返回 500
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrDishNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, pricing.ErrDivisionUndefined):
		return http.StatusInternalServerError
	default:
		return 0
	}
}

// handleError 将业务错误写回客户端；page 非空时 HTML 客户端会重新渲染该页面并显示错误
func handleError(c *gin.Context, page string, err error, fallback string) {
	if code := errorStatus(err); code != 0 {
		fail(c, code, page, err.Error())
		return
	}
	fail(c, http.StatusInternalServerError, page, SafeErrorMessage(err, fallback))
}
