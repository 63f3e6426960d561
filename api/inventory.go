package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"costchef/middleware"
	"costchef/pricing"

	"github.com/gin-gonic/gin"
)

// AddItemRequest 录入库存请求
type AddItemRequest struct {
	ItemName   string      `json:"item_name" form:"item_name" binding:"required" example:"Flour"`
	BulkCost   json.Number `json:"bulk_cost" form:"bulk_cost" binding:"required" swaggertype:"number" example:"10.00"`     // 整箱价格
	BulkWeight json.Number `json:"bulk_weight" form:"bulk_weight" binding:"required" swaggertype:"number" example:"5.00"` // 整箱重量（磅）
}

// InventoryForm 库存录入页
// @Summary 库存录入表单
// @Tags 库存
// @Produce json,html
// @Success 200 {object} Response{data=FormSpec}
// @Router / [get]
func (h *KitchenHandler) InventoryForm(c *gin.Context) {
	render(c, "index.html", "", FormSpec{
		Action: "/",
		Method: http.MethodPost,
		Fields: []string{"item_name", "bulk_cost", "bulk_weight"},
	})
}

// AddItem 录入库存食材，按整箱价格与重量折算每盎司成本
// @Summary 录入库存食材
// @Description 每盎司成本 = 整箱价格 / (整箱重量 * 16)，向上取两位小数。需要登录。
// @Tags 库存
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param request body AddItemRequest true "食材信息"
// @Success 200 {object} Response{data=ResultData} "录入成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未登录"
// @Router / [post]
func (h *KitchenHandler) AddItem(c *gin.Context) {
	if middleware.GetCurrentUserID(c) == 0 {
		fail(c, http.StatusUnauthorized, "index.html", "仅注册用户可以录入库存，访客可在其他页面使用已有食材")
		return
	}

	var req AddItemRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "index.html", "参数错误: "+err.Error())
		return
	}
	bulkCost, err := parseAmount("bulk_cost", req.BulkCost)
	if err != nil {
		fail(c, http.StatusBadRequest, "index.html", err.Error())
		return
	}
	bulkWeight, err := parseAmount("bulk_weight", req.BulkWeight)
	if err != nil {
		fail(c, http.StatusBadRequest, "index.html", err.Error())
		return
	}

	item, err := h.svc.Inventory.AddItem(c.Request.Context(), req.ItemName, bulkCost, bulkWeight)
	if err != nil {
		handleError(c, "index.html", err, "录入食材失败")
		return
	}

	result := fmt.Sprintf("%s 每盎司成本 %s", item.ItemName, pricing.Money(item.ItemCostOz))
	renderResult(c, result, item)
}

// ListInventory 库存列表
// @Summary 库存列表
// @Description 所有库存食材及每盎司成本，按录入顺序
// @Tags 库存
// @Produce json,html
// @Success 200 {object} Response{data=[]service.InventoryLine}
// @Router /inventory.html [get]
func (h *KitchenHandler) ListInventory(c *gin.Context) {
	lines, err := h.svc.Inventory.ListAll(c.Request.Context())
	if err != nil {
		handleError(c, "", err, "查询库存失败")
		return
	}
	render(c, "inventory.html", "success", lines)
}
