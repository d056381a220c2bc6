package api

import (
	"errors"
	"net/http"

	"moneyflow/service"

	"github.com/gin-gonic/gin"
)

// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationErrors 字段校验失败时 data 的结构
type ValidationErrors struct {
	Errors []service.FieldError `json:"errors"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    200,
		Message: message,
		Data:    data,
	})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Conflict 409 错误响应
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// ValidationFailed 400，data 中列出每个字段的错误码
func ValidationFailed(c *gin.Context, ve *service.ValidationError) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: ve.Error(),
		Data:    ValidationErrors{Errors: ve.Fields},
	})
}

// respondError 把 service 层错误映射为 HTTP 响应
func respondError(c *gin.Context, err error, fallback string) {
	if ve, ok := service.AsValidationError(err); ok {
		ValidationFailed(c, ve)
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrProtectedDeletion):
		Conflict(c, service.ErrProtectedDeletion.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		Unauthorized(c, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrUserLocked):
		Error(c, http.StatusForbidden, "账号已锁定，请联系管理员解锁")
	case errors.Is(err, service.ErrReconciliation):
		_ = c.Error(err)
		InternalError(c, service.ErrReconciliation.Error()+"，操作已回滚")
	default:
		_ = c.Error(err)
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}
