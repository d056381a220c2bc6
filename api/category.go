package api

import (
	"moneyflow/middleware"
	"moneyflow/models"
	"moneyflow/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 收支类别处理器
type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// CategoryRequest 创建/更新类别请求
type CategoryRequest struct {
	Name         string `json:"name" binding:"required,max=50" example:"Mercado"`
	CategoryType string `json:"category_type" binding:"required" example:"expense"`
	Color        string `json:"color" binding:"omitempty,max=7" example:"#ef4444"`
}

func (r CategoryRequest) input() service.CategoryInput {
	return service.CategoryInput{Name: r.Name, Type: models.CategoryType(r.CategoryType), Color: r.Color}
}

// List 列出类别
// @Summary 获取类别列表
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Param category_type query string false "类型 income/expense"
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	typ := models.CategoryType(c.Query("category_type"))
	if typ != "" && !typ.Valid() {
		BadRequest(c, "无效的类别类型")
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID, typ)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, list)
}

// Create 创建类别
// @Summary 创建类别
// @Description 名称在当前用户下唯一，颜色格式 #RRGGBB
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response{data=ValidationErrors} "校验失败或名称已存在"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	category, err := h.svc.Create(c.Request.Context(), userID, req.input())
	if err != nil {
		respondError(c, err, "创建类别失败")
		return
	}
	SuccessWithMessage(c, "创建成功", category)
}

// Get 获取类别
// @Summary 获取类别详情
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Success 200 {object} Response{data=models.Category} "获取成功"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err, "查询失败")
		return
	}
	Success(c, category)
}

// Update 更新类别
// @Summary 更新类别
// @Description 已有收支记录的类别不能修改类型
// @Tags 类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Param request body CategoryRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "更新成功"
// @Failure 400 {object} Response{data=ValidationErrors} "校验失败"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	category, err := h.svc.Update(c.Request.Context(), userID, id, req.input())
	if err != nil {
		respondError(c, err, "更新类别失败")
		return
	}
	SuccessWithMessage(c, "更新成功", category)
}

// Delete 删除类别
// @Summary 删除类别
// @Description 类别下存在收支记录时禁止删除（返回 409）
// @Tags 类别
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "类别不存在"
// @Failure 409 {object} Response "存在关联交易"
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err, "删除类别失败")
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
