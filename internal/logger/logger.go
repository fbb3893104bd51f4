package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger 创建一个新的日志记录器，debug 为 true 时忽略 level 直接使用调试级别
func NewLogger(level string, debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()

	lvl := zapcore.WarnLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}
	if debug {
		lvl = zapcore.DebugLevel
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	config.DisableStacktrace = true

	// 标准输出留给译文
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	return config.Build()
}

// MustNewLogger 与 NewLogger 相同，失败时 panic
func MustNewLogger(level string, debug bool) *zap.Logger {
	logger, err := NewLogger(level, debug)
	if err != nil {
		panic("初始化日志系统失败: " + err.Error())
	}
	return logger
}
