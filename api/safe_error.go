package api

import (
	"errors"
	"fmt"
	"strings"

	"moneyflow/config"

	"github.com/go-playground/validator/v10"
)

// SafeErrorMessage 请求绑定失败时列出出错字段；其他错误在 release 模式下只返回 fallback
func SafeErrorMessage(err error, fallback string) string {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		fields := make([]string, 0, len(ves))
		for _, fe := range ves {
			fields = append(fields, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
		}
		return fallback + ": " + strings.Join(fields, ", ")
	}
	return config.SafeErrorMessage(err, fallback)
}
