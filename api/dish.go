package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AddIngredientRequest 菜品添加配料请求
type AddIngredientRequest struct {
	DishName       string      `json:"dish_name" form:"dish_name" binding:"required" example:"Bread"`
	IngredientName string      `json:"ingredient_name" form:"ingredient_name" binding:"required" example:"Flour"`
	ServingSize    json.Number `json:"serving_size" form:"serving_size" binding:"required" swaggertype:"number" example:"4"` // 盎司
}

// DishForm 菜品配料页
// @Summary 菜品配料表单
// @Tags 菜品
// @Produce json,html
// @Success 200 {object} Response{data=FormSpec}
// @Router /dish.html [get]
func (h *KitchenHandler) DishForm(c *gin.Context) {
	render(c, "dish.html", "", FormSpec{
		Action: "/dish.html",
		Method: http.MethodPost,
		Fields: []string{"dish_name", "ingredient_name", "serving_size"},
	})
}

// AddIngredient 向菜品添加一行配料
// @Summary 添加配料
// @Description 配料必须已在库存中；同一配料重复添加会产生新行
// @Tags 菜品
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body AddIngredientRequest true "配料信息"
// @Success 200 {object} Response{data=models.MenuDish} "添加成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "食材不在库存中"
// @Router /dish.html [post]
func (h *KitchenHandler) AddIngredient(c *gin.Context) {
	var req AddIngredientRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "dish.html", "参数错误: "+err.Error())
		return
	}
	size, err := parseAmount("serving_size", req.ServingSize)
	if err != nil {
		fail(c, http.StatusBadRequest, "dish.html", err.Error())
		return
	}

	line, err := h.svc.Dishes.AddIngredient(c.Request.Context(), req.DishName, req.IngredientName, size)
	if err != nil {
		handleError(c, "dish.html", err, "添加配料失败")
		return
	}

	// 浏览器回到表单继续添加
	redirectOr(c, "/dish.html", "添加成功", line)
}
