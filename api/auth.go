package api

import (
	"errors"

	"moneyflow/config"
	"moneyflow/middleware"
	"moneyflow/models"
	"moneyflow/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证与个人资料处理器
type AuthHandler struct {
	cfg   *config.Config
	users *service.UserService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config, users *service.UserService) *AuthHandler {
	return &AuthHandler{cfg: cfg, users: users}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"maria"`
	Password string `json:"password" binding:"required,min=6,max=50" example:"password123"`
	Email    string `json:"email" binding:"omitempty,email" example:"maria@example.com"`
	FullName string `json:"full_name" binding:"omitempty,max=200" example:"Maria Silva"`
}

// LoginRequest 登录请求（支持用户名或邮箱）
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"maria"` // 可为用户名或邮箱
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token    string      `json:"token"`
	UserInfo models.User `json:"user_info"`
}

// UpdateProfileRequest 修改个人资料请求
type UpdateProfileRequest struct {
	FullName *string `json:"full_name" example:"Maria Silva"`
	Phone    *string `json:"phone" example:"+55 11 99999-0000"`
	Email    *string `json:"email" binding:"omitempty,email" example:"maria@example.com"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required" example:"oldpassword123"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=50" example:"newpassword123"`
}

// Register 用户注册
// @Summary 用户注册
// @Description 创建用户、个人资料和默认收支类别；配置了邮件服务时发送欢迎邮件
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册信息"
// @Success 200 {object} Response{data=models.User} "注册成功"
// @Failure 400 {object} Response{data=ValidationErrors} "请求参数错误"
// @Failure 500 {object} Response "服务器错误"
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		respondError(c, err, "创建用户失败")
		return
	}

	SuccessWithMessage(c, "注册成功", user)
}

// Login 用户登录
// @Summary 用户登录
// @Description 用户登录获取 JWT token
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录信息"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "用户名或密码错误"
// @Failure 403 {object} Response "账号已锁定"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "登录失败")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	Success(c, LoginResponse{
		Token:    token,
		UserInfo: *user,
	})
}

// GetProfile 获取用户信息
// @Summary 获取当前用户信息
// @Description 获取当前登录用户及其个人资料
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.User} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/auth/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	user, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "获取用户信息失败")
		return
	}

	Success(c, user)
}

// UpdateProfile 修改个人资料
// @Summary 修改个人资料
// @Description 修改全名、电话和邮箱
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "个人资料"
// @Success 200 {object} Response{data=models.User} "修改成功"
// @Failure 400 {object} Response{data=ValidationErrors} "请求参数错误"
// @Router /api/v1/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, service.ProfileInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		respondError(c, err, "修改个人资料失败")
		return
	}

	SuccessWithMessage(c, "修改成功", user)
}

// ChangePassword 修改密码
// @Summary 修改密码
// @Description 修改当前用户密码
// @Tags 认证
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "密码信息"
// @Success 200 {object} Response "修改成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "原密码错误"
// @Router /api/v1/auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	err := h.users.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword)
	if errors.Is(err, service.ErrInvalidCredentials) {
		Unauthorized(c, "原密码错误")
		return
	}
	if err != nil {
		respondError(c, err, "修改密码失败")
		return
	}

	SuccessWithMessage(c, "密码修改成功", nil)
}

// DeleteAccount 注销当前用户
// @Summary 注销用户
// @Description 删除当前用户及其账户、类别、个人资料；存在收支记录时禁止删除（返回 409）
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "注销成功"
// @Failure 409 {object} Response "存在关联交易"
// @Router /api/v1/auth/account [delete]
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	if err := h.users.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err, "注销失败")
		return
	}

	SuccessWithMessage(c, "注销成功", nil)
}
