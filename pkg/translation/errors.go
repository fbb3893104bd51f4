package translation

import (
	"errors"
	"fmt"
)

// 预定义错误
var (
	// ErrNoProvider 未设置提供商
	ErrNoProvider = errors.New("provider not configured")

	// ErrNoCatalog 未设置语言表
	ErrNoCatalog = errors.New("language catalog not configured")

	// ErrInvalidMode 未知模式
	ErrInvalidMode = errors.New("invalid mode")

	// ErrEmptyCustomPrompt 自定义模式缺少提示词
	ErrEmptyCustomPrompt = errors.New("custom mode requires a non-empty prompt")
)

// Kind 交给宿主展示的错误分类
type Kind string

const (
	KindUnsupportedLanguage Kind = "unsupportedLanguage"
	KindSecretKey           Kind = "secretKey"
	KindParam               Kind = "param"
	KindAPI                 Kind = "api"
	KindUnknown             Kind = "unknown"
)

// 固定的错误提示
const (
	MessageUnsupportedLanguage = "不支持该语种"
	MessageSecretKey           = "配置错误 - 请确保您在插件配置中填入了正确的 API Keys"
	AdditionSecretKey          = "请在插件配置中填写正确的 API Keys"
	MessageUnknown             = "Unknown error"
)

// Error 已分类的错误，每个失败的请求只产生一个
type Error struct {
	Type     Kind   `json:"type"`
	Message  string `json:"message"`
	Addition string `json:"addition,omitempty"`
	Cause    error  `json:"-"`
}

// Error 实现error接口
func (e *Error) Error() string {
	if e.Addition != "" && e.Addition != e.Message {
		return fmt.Sprintf("[%s] %s: %s", e.Type, e.Message, e.Addition)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap 返回原因错误
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError 创建分类错误
func NewError(kind Kind, message, addition string) *Error {
	return &Error{
		Type:     kind,
		Message:  message,
		Addition: addition,
	}
}

// NewUnsupportedLanguageError 目标语言不在语言表中
func NewUnsupportedLanguageError(code string) *Error {
	return NewError(KindUnsupportedLanguage, MessageUnsupportedLanguage, fmt.Sprintf("%s: %s", MessageUnsupportedLanguage, code))
}

// NewSecretKeyError API Key 缺失或错误
func NewSecretKeyError() *Error {
	return NewError(KindSecretKey, MessageSecretKey, AdditionSecretKey)
}

// KindOf 返回错误的分类，非分类错误视为 unknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.Type != "" {
		return e.Type
	}
	return KindUnknown
}
