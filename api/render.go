package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"costchef/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
)

var offered = []string{binding.MIMEJSON, binding.MIMEHTML}

// FormSpec 表单页面对非浏览器客户端的描述
type FormSpec struct {
	Action string   `json:"action"`
	Method string   `json:"method"`
	Fields []string `json:"fields"`
}

// ResultData 写操作结果：结果描述与结果页地址
type ResultData struct {
	Result   string      `json:"result"`
	Redirect string      `json:"redirect"`
	Detail   interface{} `json:"detail,omitempty"`
}

// wantsHTML 客户端是否偏好 HTML
func wantsHTML(c *gin.Context) bool {
	return c.NegotiateFormat(offered...) == binding.MIMEHTML
}

// render 按 Accept 返回 JSON 信封或 HTML 页面
func render(c *gin.Context, page, message string, data interface{}) {
	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered:  offered,
		HTMLName: page,
		HTMLData: gin.H{
			"Message":  message,
			"Data":     data,
			"LoggedIn": middleware.GetCurrentUserID(c) != 0,
		},
		JSONData: Response{Code: http.StatusOK, Message: message, Data: data},
	})
}

// fail 错误响应；HTML 客户端重新渲染 page 并显示错误
func fail(c *gin.Context, code int, page, message string) {
	if page == "" {
		Error(c, code, message)
		return
	}
	c.Negotiate(code, gin.Negotiate{
		Offered:  offered,
		HTMLName: page,
		HTMLData: gin.H{
			"Error":    message,
			"LoggedIn": middleware.GetCurrentUserID(c) != 0,
		},
		JSONData: Response{Code: code, Message: message},
	})
}

// renderResult 写操作成功：浏览器跳转到结果页，其余客户端返回结果描述
func renderResult(c *gin.Context, result string, detail interface{}) {
	redirect := ResultPath(result)
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, redirect)
		return
	}
	SuccessWithMessage(c, result, ResultData{Result: result, Redirect: redirect, Detail: detail})
}

// redirectOr 浏览器跳转到 location，其余客户端返回 JSON
func redirectOr(c *gin.Context, location, message string, data interface{}) {
	if wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, location)
		return
	}
	SuccessWithMessage(c, message, data)
}

// ResultPath 结果页地址
func ResultPath(result string) string {
	return "/food_cost/" + url.PathEscape(result)
}

// parseAmount 解析表单中的数值字段
func parseAmount(field string, v json.Number) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(v))
	if s == "" {
		return decimal.Zero, fmt.Errorf("%s 不能为空", field)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s 不是有效的数字", field)
	}
	return d, nil
}
