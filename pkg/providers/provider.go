package providers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// BaseConfig 基础配置
type BaseConfig struct {
	// API配置
	APIKey      string `json:"api_key,omitempty"`
	APIEndpoint string `json:"api_endpoint,omitempty"`

	// 超时
	Timeout time.Duration `json:"timeout"`

	// 代理设置
	ProxyURL string `json:"proxy_url,omitempty"`

	// 自定义头部
	Headers map[string]string `json:"headers,omitempty"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() BaseConfig {
	return BaseConfig{
		Timeout: 5 * time.Minute, // 流式响应可能持续较久
		Headers: make(map[string]string),
	}
}

// NewHTTPClient 根据配置创建 HTTP 客户端
func NewHTTPClient(config BaseConfig) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if config.ProxyURL != "" {
		proxy, err := url.Parse(config.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url %q: %w", config.ProxyURL, err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &http.Client{
		Timeout:   config.Timeout,
		Transport: transport,
	}, nil
}

// MaskAuthToken 遮蔽认证令牌，只显示前4位和后4位
func MaskAuthToken(token string) string {
	if len(token) <= 8 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
