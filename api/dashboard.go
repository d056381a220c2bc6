package api

import (
	"moneyflow/middleware"
	"moneyflow/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 首页汇总
type DashboardHandler struct {
	svc *service.DashboardService
}

// NewDashboardHandler 创建首页汇总处理器
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary 首页汇总
// @Summary 首页汇总
// @Description 总余额、启用账户数、本月收入/支出/结余、最近收支记录、本月按类别统计
// @Tags 首页
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.Dashboard} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	d, err := h.svc.Summary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "获取汇总失败")
		return
	}
	Success(c, d)
}
