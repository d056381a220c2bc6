package service

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound 记录不存在或不属于当前用户
	ErrNotFound = errors.New("记录不存在")
	// ErrProtectedDeletion 存在关联交易，禁止删除账户/类别/用户
	ErrProtectedDeletion = errors.New("存在关联交易，无法删除")
	// ErrReconciliation 余额调整失败，整个写操作已回滚
	ErrReconciliation = errors.New("账户余额更新失败")
	// ErrDuplicateName 同一用户下名称重复
	ErrDuplicateName = errors.New("名称已存在")
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	// ErrUserLocked 账号被锁定
	ErrUserLocked = errors.New("账号已锁定")
)

// ErrorCode 字段级校验错误码
type ErrorCode string

const (
	CodeInvalidAmount        ErrorCode = "InvalidAmount"
	CodeFutureDateNotAllowed ErrorCode = "FutureDateNotAllowed"
	CodeCategoryTypeMismatch ErrorCode = "CategoryTypeMismatch"
	CodeInsufficientBalance  ErrorCode = "InsufficientBalance"
	CodeInvalidType          ErrorCode = "InvalidType"
	CodeInvalidChoice        ErrorCode = "InvalidChoice"
	CodeRequired             ErrorCode = "Required"
	CodeInvalid              ErrorCode = "Invalid"
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ValidationError 可由用户修正的输入错误，包含一个或多个字段错误
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return strings.Join(msgs, "; ")
}

// Add 追加字段错误
func (e *ValidationError) Add(field string, code ErrorCode, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Code: code, Message: message})
}

// Has 是否包含指定错误码
func (e *ValidationError) Has(code ErrorCode) bool {
	for _, f := range e.Fields {
		if f.Code == code {
			return true
		}
	}
	return false
}

// HasField 指定字段是否已有错误
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// errOrNil 没有字段错误时返回 nil
func (e *ValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// newFieldError 构造只有一个字段错误的 ValidationError
func newFieldError(field string, code ErrorCode, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, code, message)
	return v
}

// AsValidationError 判断 err 是否为字段校验错误
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
