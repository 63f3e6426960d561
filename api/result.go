package api

import (
	"github.com/gin-gonic/gin"
)

// ShowResult 结果页，展示写操作生成的结果描述
// @Summary 结果页
// @Tags 库存
// @Produce json,html
// @Param results path string true "结果描述"
// @Success 200 {object} Response{data=ResultData}
// @Router /food_cost/{results} [get]
func ShowResult(c *gin.Context) {
	result := c.Param("results")
	render(c, "food_cost.html", result, ResultData{Result: result, Redirect: ResultPath(result)})
}
