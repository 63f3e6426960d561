package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"costchef/pricing"

	"github.com/gin-gonic/gin"
)

// PortionRequest 份量报价请求
type PortionRequest struct {
	Name        string      `json:"name" form:"name" binding:"required" example:"Flour"`
	PortionSize json.Number `json:"portion_size" form:"portion_size" binding:"required" swaggertype:"number" example:"4"` // 盎司
}

// PortionForm 份量报价页
// @Summary 份量报价表单
// @Tags 库存
// @Produce json,html
// @Success 200 {object} Response{data=FormSpec}
// @Router /portion.html [get]
func (h *KitchenHandler) PortionForm(c *gin.Context) {
	render(c, "portion.html", "", FormSpec{
		Action: "/portion.html",
		Method: http.MethodPost,
		Fields: []string{"name", "portion_size"},
	})
}

// QuotePortion 计算单个食材指定份量的成本与建议售价，不保存
// @Summary 份量报价
// @Tags 库存
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body PortionRequest true "食材与份量"
// @Success 200 {object} Response{data=ResultData}
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "食材不在库存中"
// @Router /portion.html [post]
func (h *KitchenHandler) QuotePortion(c *gin.Context) {
	var req PortionRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "portion.html", "参数错误: "+err.Error())
		return
	}
	size, err := parseAmount("portion_size", req.PortionSize)
	if err != nil {
		fail(c, http.StatusBadRequest, "portion.html", err.Error())
		return
	}

	quote, err := h.svc.Inventory.QuotePortion(c.Request.Context(), req.Name, size)
	if err != nil {
		handleError(c, "portion.html", err, "计算失败")
		return
	}

	result := fmt.Sprintf("%s 该份量食材成本 %s，建议售价 %s",
		quote.Name, pricing.Money(quote.PortionCost), pricing.Money(quote.MenuPrice))
	renderResult(c, result, quote)
}
