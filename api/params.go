package api

import (
	"strconv"
	"strings"
	"time"

	"moneyflow/models"
	"moneyflow/service"

	"github.com/gin-gonic/gin"
)

// parseID 解析路径参数 :id
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id), true
}

// parseDate 解析 2006-01-02 格式日期，空字符串返回 nil
func parseDate(value, field string, loc *time.Location, ve *service.ValidationError) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := time.ParseInLocation(models.DateLayout, value, loc)
	if err != nil {
		ve.Add(field, service.CodeInvalid, "日期格式错误，应为: 2006-01-02")
		return nil
	}
	return &t
}
