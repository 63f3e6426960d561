package api

import (
	"fmt"
	"net/http"

	"costchef/pricing"

	"github.com/gin-gonic/gin"
)

// MenuNumbersRequest 菜品汇总请求
type MenuNumbersRequest struct {
	Name string `json:"name" form:"name" binding:"required" example:"Bread"`
}

// MenuNumbersForm 菜品汇总页
// @Summary 菜品汇总表单
// @Tags 菜单
// @Produce json,html
// @Success 200 {object} Response{data=FormSpec}
// @Router /get_numbers.html [get]
func (h *KitchenHandler) MenuNumbersForm(c *gin.Context) {
	render(c, "get_numbers.html", "", FormSpec{
		Action: "/get_numbers.html",
		Method: http.MethodPost,
		Fields: []string{"name"},
	})
}

// ComputeMenuNumbers 汇总菜品成本并计算建议售价，覆盖该菜品已保存的结果
// @Summary 计算菜品成本与售价
// @Tags 菜单
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body MenuNumbersRequest true "菜品名称"
// @Success 200 {object} Response{data=ResultData}
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "菜品尚未创建"
// @Router /get_numbers.html [post]
func (h *KitchenHandler) ComputeMenuNumbers(c *gin.Context) {
	var req MenuNumbersRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "get_numbers.html", "参数错误: "+err.Error())
		return
	}

	numbers, err := h.svc.Menu.ComputeMenuNumbers(c.Request.Context(), req.Name)
	if err != nil {
		handleError(c, "get_numbers.html", err, "计算失败")
		return
	}

	result := fmt.Sprintf("%s 食材总成本 %s，建议售价 %s",
		numbers.Name, pricing.Money(numbers.FoodCost), pricing.Money(numbers.MenuPrice))
	renderResult(c, result, numbers)
}

// ListMenu 菜单列表
// @Summary 菜单列表
// @Description 所有已汇总菜品的成本与建议售价
// @Tags 菜单
// @Produce json,html
// @Success 200 {object} Response{data=[]service.MenuLine}
// @Router /data_content.html [get]
func (h *KitchenHandler) ListMenu(c *gin.Context) {
	lines, err := h.svc.Menu.ListMenuNumbers(c.Request.Context())
	if err != nil {
		handleError(c, "", err, "查询菜单失败")
		return
	}
	render(c, "data_content.html", "success", lines)
}
