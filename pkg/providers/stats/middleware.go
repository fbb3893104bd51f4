// Package stats 统计提供商调用的成功率、延迟和流式输出量
package stats

import (
	"context"
	"time"

	"github.com/nerdneilsfield/cohere-translator/pkg/translation"
)

// Middleware 在提供商外层记录每次流式调用
type Middleware struct {
	next      translation.Provider
	manager   *Manager
	modelName string
}

var _ translation.Provider = (*Middleware)(nil)

// NewMiddleware 创建统计中间件
func NewMiddleware(next translation.Provider, manager *Manager, modelName string) *Middleware {
	return &Middleware{
		next:      next,
		manager:   manager,
		modelName: modelName,
	}
}

// Name 返回被包装提供商的名称
func (m *Middleware) Name() string {
	return m.next.Name()
}

// StreamChat 转发请求并记录结果
func (m *Middleware) StreamChat(ctx context.Context, input translation.ChatInput, onDelta translation.DeltaHandler) translation.Outcome {
	start := time.Now()
	result := RequestResult{}

	outcome := m.next.StreamChat(ctx, input, func(d translation.Delta) error {
		if d.Unfinished && d.Text != "" {
			result.Deltas++
			result.OutputSize += len(d.Text)
		}
		return onDelta(d)
	})

	result.Latency = time.Since(start)
	if classified := translation.Classify(outcome); classified != nil {
		result.ErrorType = string(classified.Type)
	} else {
		result.Success = true
	}

	model := input.Model
	if model == "" {
		model = m.modelName
	}
	m.manager.Record(m.next.Name(), model, result)

	return outcome
}
