package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RecipeRequest 配方查询请求
type RecipeRequest struct {
	Name string `json:"name" form:"name" binding:"required" example:"Bread"`
}

// Recipe 菜品配方
type Recipe struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

// RecipeForm 配方查询页
// @Summary 配方查询表单
// @Tags 菜品
// @Produce json,html
// @Success 200 {object} Response{data=FormSpec}
// @Router /recipes.html [get]
func (h *KitchenHandler) RecipeForm(c *gin.Context) {
	render(c, "recipes.html", "", FormSpec{
		Action: "/recipes.html",
		Method: http.MethodPost,
		Fields: []string{"name"},
	})
}

// GetRecipe 查询菜品的配料（去重）
// @Summary 查询配方
// @Tags 菜品
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param request body RecipeRequest true "菜品名称"
// @Success 200 {object} Response{data=Recipe}
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "菜品尚未创建"
// @Router /recipes.html [post]
func (h *KitchenHandler) GetRecipe(c *gin.Context) {
	var req RecipeRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "recipes.html", "参数错误: "+err.Error())
		return
	}

	names, err := h.svc.Dishes.ListIngredients(c.Request.Context(), req.Name)
	if err != nil {
		handleError(c, "recipes.html", err, "查询配方失败")
		return
	}
	render(c, "recipe_results.html", "success", Recipe{Name: strings.TrimSpace(req.Name), Ingredients: names})
}
