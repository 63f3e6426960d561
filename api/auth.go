package api

import (
	"net/http"

	"costchef/middleware"
	"costchef/models"
	"costchef/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	accounts *service.AccountService
	tokens   *middleware.TokenManager
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(accounts *service.AccountService, tokens *middleware.TokenManager) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required,max=100" example:"Julia"`
	Email    string `json:"email" form:"email" binding:"required,email,max=100" example:"julia@example.com"`
	Password string `json:"password" form:"password" binding:"required,min=6,max=72" example:"password123"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required" example:"julia@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterForm 注册页
// @Summary 注册表单
// @Tags 认证
// @Produce json,html
// @Success 200 {object} Response{data=FormSpec}
// @Router /register [get]
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	render(c, "register.html", "", FormSpec{
		Action: "/register",
		Method: http.MethodPost,
		Fields: []string{"name", "email", "password"},
	})
}

// Register 用户注册，成功后直接登录
// @Summary 用户注册
// @Description 第一个注册的用户成为管理员
// @Tags 认证
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} Response{data=LoginResponse} "注册成功"
// @Failure 400 {object} Response "请求参数错误或邮箱已注册"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "register.html", "参数错误: "+err.Error())
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		handleError(c, "register.html", err, "注册失败")
		return
	}

	token, err := h.startSession(c, user)
	if err != nil {
		fail(c, http.StatusInternalServerError, "register.html", "生成 token 失败")
		return
	}
	redirectOr(c, "/", "注册成功", LoginResponse{Token: token, User: *user})
}

// LoginForm 登录页
// @Summary 登录表单
// @Tags 认证
// @Produce json,html
// @Success 200 {object} Response{data=FormSpec}
// @Router /login [get]
func (h *AuthHandler) LoginForm(c *gin.Context) {
	render(c, "login.html", "", FormSpec{
		Action: "/login",
		Method: http.MethodPost,
		Fields: []string{"email", "password"},
	})
}

// Login 用户登录
// @Summary 用户登录
// @Description 返回 JWT token 并写入会话 Cookie
// @Tags 认证
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "邮箱或密码错误"
// @Failure 429 {object} Response "登录尝试过于频繁"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, "login.html", "参数错误: "+err.Error())
		return
	}

	user, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleError(c, "login.html", err, "登录失败")
		return
	}

	token, err := h.startSession(c, user)
	if err != nil {
		fail(c, http.StatusInternalServerError, "login.html", "生成 token 失败")
		return
	}
	redirectOr(c, "/", "登录成功", LoginResponse{Token: token, User: *user})
}

// Logout 退出登录
// @Summary 退出登录
// @Tags 认证
// @Produce json
// @Success 200 {object} Response "已退出"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	redirectOr(c, "/", "已退出登录", nil)
}

// GetProfile 获取当前用户信息
// @Summary 当前用户信息
// @Tags 认证
// @Produce json,html
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "获取成功"
// @Failure 401 {object} Response "未登录"
// @Router /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.accounts.Get(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		handleError(c, "", err, "获取用户信息失败")
		return
	}
	render(c, "profile.html", "success", user)
}

// startSession 签发 token 并写入会话 Cookie
func (h *AuthHandler) startSession(c *gin.Context, user *models.User) (string, error) {
	token, err := h.tokens.GenerateToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return "", err
	}
	setSessionCookie(c, token, h.tokens.Expire())
	return token, nil
}
