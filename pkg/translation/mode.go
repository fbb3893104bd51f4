package translation

import (
	"fmt"
	"strings"
)

// Mode 调用意图
type Mode int

const (
	ModeTranslate Mode = iota + 1
	ModePolish
	ModeAnswer
	ModeCustomPrompt
)

// Modes 全部模式，按配置中的编号排列
var Modes = []Mode{ModeTranslate, ModePolish, ModeAnswer, ModeCustomPrompt}

// String 返回模式在配置中的名称
func (m Mode) String() string {
	switch m {
	case ModeTranslate:
		return "translate"
	case ModePolish:
		return "polish"
	case ModeAnswer:
		return "answer"
	case ModeCustomPrompt:
		return "custom"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid 是否为已知模式
func (m Mode) Valid() bool {
	return m >= ModeTranslate && m <= ModeCustomPrompt
}

// ParseMode 解析配置中的模式，同时接受名称和插件配置里的编号 1-4
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1", "translate":
		return ModeTranslate, nil
	case "2", "polish":
		return ModePolish, nil
	case "3", "answer":
		return ModeAnswer, nil
	case "4", "custom", "customprompt", "custom_prompt":
		return ModeCustomPrompt, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}
