// Package cohere 通过 Cohere /v1/chat 流式接口实现 translation.Provider
package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/nerdneilsfield/cohere-translator/pkg/providers"
	"github.com/nerdneilsfield/cohere-translator/pkg/translation"
)

const (
	// DefaultAPIEndpoint 未配置 api_url 时使用的地址
	DefaultAPIEndpoint = "https://api.cohere.ai"

	// DefaultModel 未配置 model 时使用的模型
	DefaultModel = "command-r-plus"

	chatPath = "/v1/chat"

	// 错误响应体最多读取的字节数
	maxErrorBody = 64 * 1024
)

// Config Cohere配置
type Config struct {
	providers.BaseConfig
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	base := providers.DefaultConfig()
	base.APIEndpoint = DefaultAPIEndpoint
	return Config{BaseConfig: base}
}

// Provider Cohere提供商
type Provider struct {
	config     Config
	httpClient *http.Client
	logger     *zap.Logger
}

var _ translation.Provider = (*Provider)(nil)

// New 创建新的Cohere提供商
func New(config Config, logger *zap.Logger) (*Provider, error) {
	if config.APIEndpoint == "" {
		config.APIEndpoint = DefaultAPIEndpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient, err := providers.NewHTTPClient(config.BaseConfig)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// NewWithClient 使用指定的 HTTP 客户端创建提供商
func NewWithClient(config Config, client *http.Client, logger *zap.Logger) *Provider {
	if config.APIEndpoint == "" {
		config.APIEndpoint = DefaultAPIEndpoint
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		config:     config,
		httpClient: client,
		logger:     logger,
	}
}

// Name 获取提供商名称
func (p *Provider) Name() string {
	return "cohere"
}

// Endpoint 返回聊天接口地址
func (p *Provider) Endpoint() string {
	return strings.TrimRight(p.config.APIEndpoint, "/") + chatPath
}

// StreamChat 发送流式聊天请求
func (p *Provider) StreamChat(ctx context.Context, input translation.ChatInput, onDelta translation.DeltaHandler) translation.Outcome {
	if p.config.APIKey == "" {
		return translation.Failed(translation.NewSecretKeyError())
	}

	body, err := json.Marshal(BuildChatRequest(input.Model, input.Prompt, input.Text))
	if err != nil {
		return translation.Failed(fmt.Errorf("failed to marshal request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return translation.Failed(fmt.Errorf("failed to create request: %w", err))
	}

	// 设置头部
	httpReq.Header.Set("accept", "application/json")
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("Authorization", "bearer "+p.config.APIKey)
	for k, v := range p.config.Headers {
		httpReq.Header.Set(k, v)
	}

	p.logger.Debug("发送流式 API 请求",
		zap.String("url", httpReq.URL.String()),
		zap.String("model", input.Model),
		zap.String("api_key", providers.MaskAuthToken(p.config.APIKey)),
		zap.Int("body_size", len(body)),
	)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return translation.Failed(fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		p.logger.Debug("流式请求返回错误状态码",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(errBody)),
		)
		return translation.Ok(&translation.Response{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(errBody),
		})
	}

	if err := readStream(resp.Body, onDelta); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return translation.Failed(fmt.Errorf("stream aborted: %w", ctxErr))
		}
		return translation.Failed(err)
	}

	return translation.Ok(&translation.Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	})
}
