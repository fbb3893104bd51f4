package translation

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options 每次调用都会用到的插件配置
type Options struct {
	// Model Cohere 模型标识
	Model string `json:"model"`

	// Mode 调用意图
	Mode Mode `json:"mode"`

	// CustomPrompt 自定义模式下的系统指令
	CustomPrompt string `json:"customize_prompt,omitempty"`
}

// Validate 校验配置
func (o Options) Validate() error {
	if !o.Mode.Valid() {
		return ErrInvalidMode
	}
	if o.Mode == ModeCustomPrompt && o.CustomPrompt == "" {
		return ErrEmptyCustomPrompt
	}
	return nil
}

// Option 服务配置选项函数
type Option func(*serviceOptions)

// serviceOptions 服务内部选项
type serviceOptions struct {
	logger      *zap.Logger
	idGenerator func() string
}

func defaultServiceOptions() serviceOptions {
	return serviceOptions{
		logger:      zap.NewNop(),
		idGenerator: func() string { return uuid.NewString() },
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *zap.Logger) Option {
	return func(o *serviceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithIDGenerator 设置请求 ID 生成函数
func WithIDGenerator(gen func() string) Option {
	return func(o *serviceOptions) {
		if gen != nil {
			o.idGenerator = gen
		}
	}
}
