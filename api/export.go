package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"costchef/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	reports *service.ReportService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(reports *service.ReportService) *ExportHandler {
	return &ExportHandler{reports: reports}
}

// ExportInventoryCSV 导出库存为 CSV
// @Summary 导出库存
// @Tags 导出
// @Produce text/csv
// @Success 200 {file} file "CSV 文件"
// @Router /export/inventory.csv [get]
func (h *ExportHandler) ExportInventoryCSV(c *gin.Context) {
	data, err := h.reports.InventoryCSV(c.Request.Context())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "导出失败"))
		return
	}

	filename := fmt.Sprintf("inventory_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ExportMenuExcel 导出菜单与库存为 Excel
// @Summary 导出菜单 Excel
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Excel 文件"
// @Router /export/menu.xlsx [get]
func (h *ExportHandler) ExportMenuExcel(c *gin.Context) {
	f, err := h.reports.MenuWorkbook(c.Request.Context())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "导出失败"))
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		InternalError(c, SafeErrorMessage(err, "生成 Excel 失败"))
		return
	}

	filename := fmt.Sprintf("menu_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
