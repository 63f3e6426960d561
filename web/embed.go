// Package web 内嵌的 HTML 页面模板
package web

import "embed"

// Templates 页面模板，浏览器请求（Accept: text/html）时渲染
//
//go:embed templates/*.html
var Templates embed.FS
