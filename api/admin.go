package api

import (
	"context"
	"errors"
	"fmt"

	"costchef/models"
	"costchef/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler 后台数据维护
type AdminHandler struct {
	admin *service.AdminService
	email *service.EmailService
}

// NewAdminHandler 创建后台处理器
func NewAdminHandler(admin *service.AdminService, email *service.EmailService) *AdminHandler {
	return &AdminHandler{admin: admin, email: email}
}

// Overview 后台总览
type Overview struct {
	Users       []models.User        `json:"users"`
	FoodItems   []models.FoodItem    `json:"food_items"`
	MenuDishes  []models.MenuDish    `json:"menu_dishes"`
	MenuNumbers []models.MenuNumbers `json:"menu_numbers"`
}

// TestEmailRequest 测试邮件请求
type TestEmailRequest struct {
	Email string `json:"email" form:"email" binding:"required,email" example:"julia@example.com"`
}

// Overview 所有数据表
// @Summary 后台总览
// @Tags 后台
// @Produce json,html
// @Security BearerAuth
// @Success 200 {object} Response{data=Overview}
// @Failure 403 {object} Response "权限不足"
// @Router /admin [get]
func (h *AdminHandler) Overview(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		data Overview
		err  error
	)
	if data.Users, err = h.admin.ListUsers(ctx); err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if data.FoodItems, err = h.admin.ListFoodItems(ctx); err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if data.MenuDishes, err = h.admin.ListMenuDishes(ctx); err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	if data.MenuNumbers, err = h.admin.ListMenuNumbers(ctx); err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	render(c, "admin.html", "success", data)
}

// ListUsers 用户列表
// @Summary 用户列表
// @Tags 后台
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.User}
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, users)
}

// ListFoodItems 库存记录
// @Summary 库存记录
// @Tags 后台
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.FoodItem}
// @Router /admin/food-items [get]
func (h *AdminHandler) ListFoodItems(c *gin.Context) {
	items, err := h.admin.ListFoodItems(c.Request.Context())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, items)
}

// ListMenuDishes 配料记录
// @Summary 配料记录
// @Tags 后台
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.MenuDish}
// @Router /admin/menu-dishes [get]
func (h *AdminHandler) ListMenuDishes(c *gin.Context) {
	lines, err := h.admin.ListMenuDishes(c.Request.Context())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, lines)
}

// ListMenuNumbers 菜品汇总记录
// @Summary 菜品汇总记录
// @Tags 后台
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.MenuNumbers}
// @Router /admin/menu-numbers [get]
func (h *AdminHandler) ListMenuNumbers(c *gin.Context) {
	rows, err := h.admin.ListMenuNumbers(c.Request.Context())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, rows)
}

// DeleteFoodItem 删除库存记录
// @Summary 删除库存记录
// @Tags 后台
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "记录不存在"
// @Router /admin/food-items/{id} [delete]
func (h *AdminHandler) DeleteFoodItem(c *gin.Context) {
	h.deleteByID(c, h.admin.DeleteFoodItem)
}

// DeleteMenuDish 删除配料记录
// @Summary 删除配料记录
// @Tags 后台
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "记录不存在"
// @Router /admin/menu-dishes/{id} [delete]
func (h *AdminHandler) DeleteMenuDish(c *gin.Context) {
	h.deleteByID(c, h.admin.DeleteMenuDish)
}

// DeleteMenuNumbers 删除菜品汇总
// @Summary 删除菜品汇总
// @Tags 后台
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response "记录不存在"
// @Router /admin/menu-numbers/{id} [delete]
func (h *AdminHandler) DeleteMenuNumbers(c *gin.Context) {
	h.deleteByID(c, h.admin.DeleteMenuNumbers)
}

// SendTestEmail 发送测试邮件
// @Summary 发送测试邮件
// @Tags 后台
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TestEmailRequest true "收件人"
// @Success 200 {object} Response
// @Failure 400 {object} Response "邮件服务未启用"
// @Router /admin/email/test [post]
func (h *AdminHandler) SendTestEmail(c *gin.Context) {
	var req TestEmailRequest
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if !h.email.Enabled() {
		BadRequest(c, "邮件服务未启用")
		return
	}
	if err := h.email.SendTestEmail(req.Email); err != nil {
		InternalError(c, SafeErrorMessage(err, "发送失败"))
		return
	}
	SuccessWithMessage(c, "测试邮件已发送", nil)
}

func (h *AdminHandler) deleteByID(c *gin.Context, del func(ctx context.Context, id uint) error) {
	var id uint
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil || id == 0 {
		BadRequest(c, "无效的ID")
		return
	}

	if err := del(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			NotFound(c, err.Error())
			return
		}
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
