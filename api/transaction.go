package api

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"moneyflow/middleware"
	"moneyflow/models"
	"moneyflow/money"
	"moneyflow/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionHandler 收支记录处理器
type TransactionHandler struct {
	svc    *service.TransactionService
	loc    *time.Location
	locale money.Locale
}

// NewTransactionHandler 创建收支记录处理器
func NewTransactionHandler(svc *service.TransactionService, loc *time.Location, locale money.Locale) *TransactionHandler {
	if loc == nil {
		loc = time.Local
	}
	return &TransactionHandler{svc: svc, loc: loc, locale: locale}
}

// CreateTransactionRequest 创建收支记录请求
type CreateTransactionRequest struct {
	AccountID       uint             `json:"account_id" binding:"required" example:"1"`
	CategoryID      uint             `json:"category_id" binding:"required" example:"3"`
	TransactionType string           `json:"transaction_type" binding:"required" example:"expense"`
	Amount          *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"99.90"`
	TransactionDate string           `json:"transaction_date" binding:"required" example:"2024-06-01"`
	Description     string           `json:"description" example:"超市购物"`
}

// UpdateTransactionRequest 更新收支记录请求，未提供的字段保持不变
type UpdateTransactionRequest struct {
	AccountID       *uint            `json:"account_id" example:"1"`
	CategoryID      *uint            `json:"category_id" example:"3"`
	TransactionType *string          `json:"transaction_type" example:"expense"`
	Amount          *decimal.Decimal `json:"amount" swaggertype:"string" example:"99.90"`
	TransactionDate *string          `json:"transaction_date" example:"2024-06-01"`
	Description     *string          `json:"description" example:"超市购物"`
}

// TransactionListRequest 收支记录列表请求
type TransactionListRequest struct {
	Page            int    `form:"page" example:"1"`
	PageSize        int    `form:"page_size" example:"20"`
	AccountID       uint   `form:"account_id" example:"1"`
	CategoryID      uint   `form:"category_id" example:"3"`
	TransactionType string `form:"transaction_type" example:"expense"`
	DateFrom        string `form:"date_from" example:"2024-01-01"`
	DateTo          string `form:"date_to" example:"2024-12-31"`
}

// Create 创建收支记录
// @Summary 创建收支记录
// @Description 创建收入或支出；支出金额不能超过账户余额，余额随记录同步调整
// @Tags 收支记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "收支记录信息"
// @Success 200 {object} Response{data=models.Transaction} "创建成功"
// @Failure 400 {object} Response{data=ValidationErrors} "校验失败"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	ve := &service.ValidationError{}
	date := parseDate(req.TransactionDate, "transaction_date", h.loc, ve)
	if date == nil && !ve.HasField("transaction_date") {
		ve.Add("transaction_date", service.CodeRequired, "请选择日期")
	}
	if len(ve.Fields) > 0 {
		ValidationFailed(c, ve)
		return
	}

	tx, err := h.svc.Create(c.Request.Context(), userID, service.TransactionInput{
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		Type:        models.TransactionType(req.TransactionType),
		Amount:      *req.Amount,
		Date:        *date,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, "创建收支记录失败")
		return
	}

	SuccessWithMessage(c, "创建成功", tx)
}

// List 获取收支记录列表
// @Summary 获取收支记录列表
// @Description 分页查询当前用户的收支记录，并返回筛选范围内的收入、支出合计与结余
// @Tags 收支记录
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param account_id query int false "账户ID"
// @Param category_id query int false "类别ID"
// @Param transaction_type query string false "类型 income/expense"
// @Param date_from query string false "开始日期 (2024-01-01)"
// @Param date_to query string false "结束日期 (2024-12-31)"
// @Success 200 {object} Response{data=service.TransactionPage} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	page, err := h.svc.List(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}

	Success(c, page)
}

// Get 获取单条收支记录
// @Summary 获取单条收支记录
// @Tags 收支记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} Response{data=models.Transaction} "获取成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	tx, err := h.svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}

	Success(c, tx)
}

// Update 更新收支记录
// @Summary 更新收支记录
// @Description 修改金额、类型、日期、账户或类别；先撤销原记录对账户余额的影响，再施加新的影响
// @Tags 收支记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Param request body UpdateTransactionRequest true "更新内容"
// @Success 200 {object} Response{data=models.Transaction} "更新成功"
// @Failure 400 {object} Response{data=ValidationErrors} "校验失败"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	patch := service.TransactionPatch{
		AccountID:   req.AccountID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.TransactionType != nil {
		typ := models.TransactionType(*req.TransactionType)
		patch.Type = &typ
	}
	if req.TransactionDate != nil {
		ve := &service.ValidationError{}
		patch.Date = parseDate(*req.TransactionDate, "transaction_date", h.loc, ve)
		if patch.Date == nil && !ve.HasField("transaction_date") {
			ve.Add("transaction_date", service.CodeRequired, "请选择日期")
		}
		if len(ve.Fields) > 0 {
			ValidationFailed(c, ve)
			return
		}
	}

	tx, err := h.svc.Update(c.Request.Context(), userID, id, patch)
	if err != nil {
		respondError(c, err, "更新收支记录失败")
		return
	}

	SuccessWithMessage(c, "更新成功", tx)
}

// Delete 删除收支记录
// @Summary 删除收支记录
// @Description 删除记录并撤销其对账户余额的影响
// @Tags 收支记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "删除收支记录失败")
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}

// Export 导出收支流水为 Excel
// @Summary 导出收支流水
// @Description 按列表筛选条件导出 xlsx 流水（最多 10000 条）
// @Tags 收支记录
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param account_id query int false "账户ID"
// @Param category_id query int false "类别ID"
// @Param transaction_type query string false "类型 income/expense"
// @Param date_from query string false "开始日期 (2024-01-01)"
// @Param date_to query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "xlsx 文件"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/transactions/export [get]
func (h *TransactionHandler) Export(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	var all []models.Transaction
	filter.PageSize = 100
	for filter.Page = 1; filter.Page <= 100; filter.Page++ {
		page, err := h.svc.List(c.Request.Context(), userID, filter)
		if err != nil {
			respondError(c, err, "查询数据失败")
			return
		}
		all = append(all, page.List...)
		if int64(len(all)) >= page.Total || len(page.List) == 0 {
			break
		}
	}

	var buf bytes.Buffer
	if err := service.WriteStatementXLSX(&buf, all, h.locale); err != nil {
		respondError(c, err, "生成 Excel 失败")
		return
	}

	filename := fmt.Sprintf("收支流水_%s.xlsx", time.Now().In(h.loc).Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *TransactionHandler) bindFilter(c *gin.Context) (service.TransactionFilter, bool) {
	var req TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return service.TransactionFilter{}, false
	}

	ve := &service.ValidationError{}
	filter := service.TransactionFilter{
		DateFrom:   parseDate(req.DateFrom, "date_from", h.loc, ve),
		DateTo:     parseDate(req.DateTo, "date_to", h.loc, ve),
		AccountID:  req.AccountID,
		CategoryID: req.CategoryID,
		Type:       models.TransactionType(req.TransactionType),
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	if filter.Type != "" && !filter.Type.Valid() {
		ve.Add("transaction_type", service.CodeInvalidType, "无效的交易类型")
	}
	if len(ve.Fields) > 0 {
		ValidationFailed(c, ve)
		return service.TransactionFilter{}, false
	}
	return filter, true
}
