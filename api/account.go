package api

import (
	"strconv"

	"moneyflow/middleware"
	"moneyflow/models"
	"moneyflow/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AccountHandler 账户处理器
type AccountHandler struct {
	svc *service.AccountService
}

// NewAccountHandler 创建账户处理器
func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// CreateAccountRequest 创建账户请求
type CreateAccountRequest struct {
	Name           string           `json:"name" binding:"required" example:"Conta corrente"`
	BankName       string           `json:"bank_name" example:"Itaú"`
	AccountType    string           `json:"account_type" example:"checking"`
	OpeningBalance *decimal.Decimal `json:"opening_balance" swaggertype:"string" example:"1500.00"`
	IsActive       *bool            `json:"is_active" example:"true"`
}

// UpdateAccountRequest 更新账户请求；余额由收支记录维护，不能直接修改
type UpdateAccountRequest struct {
	Name        *string `json:"name" example:"Poupança"`
	BankName    *string `json:"bank_name" example:"Nubank"`
	AccountType *string `json:"account_type" example:"savings"`
	IsActive    *bool   `json:"is_active" example:"false"`
}

// Create 创建账户
// @Summary 创建账户
// @Description 创建银行账户或钱包，当前余额初始化为期初余额
// @Tags 账户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAccountRequest true "账户信息"
// @Success 200 {object} Response{data=models.Account} "创建成功"
// @Failure 400 {object} Response{data=ValidationErrors} "校验失败"
// @Router /api/v1/accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	in := service.AccountInput{
		Name:     req.Name,
		BankName: req.BankName,
		Type:     models.AccountType(req.AccountType),
		IsActive: req.IsActive,
	}
	if req.OpeningBalance != nil {
		in.OpeningBalance = *req.OpeningBalance
	}

	account, err := h.svc.Create(c.Request.Context(), userID, in)
	if err != nil {
		respondError(c, err, "创建账户失败")
		return
	}

	SuccessWithMessage(c, "创建成功", account)
}

// List 获取账户列表
// @Summary 获取账户列表
// @Tags 账户
// @Produce json
// @Security BearerAuth
// @Param is_active query bool false "按启用状态筛选"
// @Success 200 {object} Response{data=[]models.Account} "获取成功"
// @Router /api/v1/accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var active *bool
	if v := c.Query("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			BadRequest(c, "is_active 参数错误")
			return
		}
		active = &b
	}

	accounts, err := h.svc.List(c.Request.Context(), userID, active)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}

	Success(c, accounts)
}

// Get 获取账户详情
// @Summary 获取账户详情
// @Tags 账户
// @Produce json
// @Security BearerAuth
// @Param id path int true "账户ID"
// @Success 200 {object} Response{data=models.Account} "获取成功"
// @Failure 404 {object} Response "账户不存在"
// @Router /api/v1/accounts/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	account, err := h.svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}

	Success(c, account)
}

// Update 更新账户
// @Summary 更新账户
// @Description 修改名称、银行、类型或启用状态；停用的账户不能再记账
// @Tags 账户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账户ID"
// @Param request body UpdateAccountRequest true "更新内容"
// @Success 200 {object} Response{data=models.Account} "更新成功"
// @Failure 400 {object} Response{data=ValidationErrors} "校验失败"
// @Failure 404 {object} Response "账户不存在"
// @Router /api/v1/accounts/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	patch := service.AccountPatch{Name: req.Name, BankName: req.BankName, IsActive: req.IsActive}
	if req.AccountType != nil {
		typ := models.AccountType(*req.AccountType)
		patch.Type = &typ
	}

	account, err := h.svc.Update(c.Request.Context(), userID, id, patch)
	if err != nil {
		respondError(c, err, "更新账户失败")
		return
	}

	SuccessWithMessage(c, "更新成功", account)
}

// Delete 删除账户
// @Summary 删除账户
// @Description 账户下存在收支记录时禁止删除（返回 409）
// @Tags 账户
// @Produce json
// @Security BearerAuth
// @Param id path int true "账户ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "账户不存在"
// @Failure 409 {object} Response "存在关联交易"
// @Router /api/v1/accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "删除账户失败")
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// Audit 核对账户余额
// @Summary 核对账户余额
// @Description 用期初余额加全部收支重新计算余额，返回与存储余额的偏差
// @Tags 账户
// @Produce json
// @Security BearerAuth
// @Param id path int true "账户ID"
// @Success 200 {object} Response{data=service.BalanceAudit} "核对结果"
// @Failure 404 {object} Response "账户不存在"
// @Router /api/v1/accounts/{id}/audit [get]
func (h *AccountHandler) Audit(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	audit, err := h.svc.Audit(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "核对失败")
		return
	}

	Success(c, audit)
}

// Repair 修复账户余额
// @Summary 修复账户余额
// @Description 存储余额与重新计算的余额不一致时，以重新计算的值为准
// @Tags 账户
// @Produce json
// @Security BearerAuth
// @Param id path int true "账户ID"
// @Success 200 {object} Response{data=service.BalanceAudit} "修复结果"
// @Failure 404 {object} Response "账户不存在"
// @Router /api/v1/accounts/{id}/repair [post]
func (h *AccountHandler) Repair(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	audit, err := h.svc.Repair(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "修复失败")
		return
	}

	message := "余额一致，无需修复"
	if audit.Repaired {
		message = "余额已修复"
	}
	SuccessWithMessage(c, message, audit)
}
