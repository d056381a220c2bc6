package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const loggerKey contextKey = "logger"

// New 按级别和格式创建日志实例，format 为 json 时输出 JSON，否则输出控制台格式
func New(level, format string) zerolog.Logger {
	var w io.Writer = os.Stdout
	if strings.ToLower(format) != "json" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(w).Level(ParseLevel(level))
}

// NewWithWriter 使用自定义 writer 创建日志实例
func NewWithWriter(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// ParseLevel 解析日志级别，无法识别时使用 info
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// SetGlobal 替换全局 logger（github.com/rs/zerolog/log）
func SetGlobal(l zerolog.Logger) {
	log.Logger = l
}

// WithContext 将 logger 放入 context
func WithContext(ctx context.Context, l zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext 从 context 取出 logger，没有则返回全局 logger
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(zerolog.Logger); ok {
			return &l
		}
	}
	return &log.Logger
}
