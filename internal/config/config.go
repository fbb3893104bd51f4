package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/nerdneilsfield/cohere-translator/pkg/providers"
	"github.com/nerdneilsfield/cohere-translator/pkg/providers/cohere"
	"github.com/nerdneilsfield/cohere-translator/pkg/translation"
)

const (
	// DefaultConfigName 配置文件名（不含扩展名）
	DefaultConfigName = ".cohere-translator"

	// EnvPrefix 环境变量前缀
	EnvPrefix = "COHERE_TRANSLATOR"

	// DefaultRequestTimeout 默认请求超时（秒）
	DefaultRequestTimeout = 300
)

var (
	// ErrMissingAPIKey 未配置 API Key
	ErrMissingAPIKey = errors.New("api_key is required")

	// ErrInvalidAPIURL api_url 不是合法的 http(s) 地址
	ErrInvalidAPIURL = errors.New("api_url must be an absolute http(s) URL")
)

// Config 保存插件的全部配置
type Config struct {
	Model           string            `mapstructure:"model"`
	Mode            string            `mapstructure:"mode"`             // translate/polish/answer/custom，或 1-4
	CustomizePrompt string            `mapstructure:"customize_prompt"` // mode 为 custom 时使用
	APIURL          string            `mapstructure:"api_url"`          // 不含 /v1/chat
	APIKey          string            `mapstructure:"api_key"`
	RequestTimeout  int               `mapstructure:"request_timeout"` // 请求超时时间（秒），0 表示不限制
	ProxyURL        string            `mapstructure:"proxy_url"`
	Headers         map[string]string `mapstructure:"headers"` // 额外的请求头
	StatsFile       string            `mapstructure:"stats_file"` // 调用统计保存位置，为空时不保存
	LogLevel        string            `mapstructure:"log_level"`
	Debug           bool              `mapstructure:"debug"`
}

// NewDefaultConfig 创建一个新的默认配置
func NewDefaultConfig() *Config {
	return &Config{
		Model:          cohere.DefaultModel,
		Mode:           translation.ModeTranslate.String(),
		APIURL:         cohere.DefaultAPIEndpoint,
		RequestTimeout: DefaultRequestTimeout,
		Headers:        make(map[string]string),
		LogLevel:       "warn",
	}
}

// setDefaults 设置默认值，同时让 viper 知道所有键以便读取环境变量
func setDefaults(v *viper.Viper) {
	defaults := NewDefaultConfig()
	v.SetDefault("model", defaults.Model)
	v.SetDefault("mode", defaults.Mode)
	v.SetDefault("customize_prompt", "")
	v.SetDefault("api_url", defaults.APIURL)
	v.SetDefault("api_key", "")
	v.SetDefault("request_timeout", defaults.RequestTimeout)
	v.SetDefault("proxy_url", "")
	v.SetDefault("headers", map[string]string{})
	v.SetDefault("stats_file", "")
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("debug", false)
}

// Validate 校验配置。api_url 与 api_key 是两个独立的配置项。
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.APIURL)
	}

	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative: %d", c.RequestTimeout)
	}

	_, err = c.TranslationOptions()
	return err
}

// TranslationOptions 转换为翻译服务配置
func (c *Config) TranslationOptions() (translation.Options, error) {
	mode, err := translation.ParseMode(c.Mode)
	if err != nil {
		return translation.Options{}, err
	}

	opts := translation.Options{
		Model:        c.Model,
		Mode:         mode,
		CustomPrompt: c.CustomizePrompt,
	}
	if err := opts.Validate(); err != nil {
		return translation.Options{}, err
	}
	return opts, nil
}

// ProviderConfig 转换为 Cohere 提供商配置
func (c *Config) ProviderConfig() cohere.Config {
	cfg := cohere.DefaultConfig()
	cfg.APIKey = c.APIKey
	if c.APIURL != "" {
		cfg.APIEndpoint = c.APIURL
	}
	cfg.Timeout = time.Duration(c.RequestTimeout) * time.Second
	cfg.ProxyURL = c.ProxyURL
	cfg.Headers = make(map[string]string, len(c.Headers))
	for k, v := range c.Headers {
		cfg.Headers[k] = v
	}
	return cfg
}

// DefaultConfigPath 默认配置文件路径
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultConfigName+".yaml"), nil
}

// SaveConfig 将配置保存到文件
func SaveConfig(config *Config, configPath string) error {
	if configPath == "" {
		path, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		configPath = path
	}

	v := viper.New()
	if err := v.MergeConfigMap(structToMap(config)); err != nil {
		return err
	}

	// 创建父目录（如果不存在）
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return v.WriteConfigAs(configPath)
}

func structToMap(config *Config) map[string]interface{} {
	headers := make(map[string]interface{}, len(config.Headers))
	for k, v := range config.Headers {
		headers[k] = v
	}
	return map[string]interface{}{
		"model":            config.Model,
		"mode":             config.Mode,
		"customize_prompt": config.CustomizePrompt,
		"api_url":          config.APIURL,
		"api_key":          config.APIKey,
		"request_timeout":  config.RequestTimeout,
		"proxy_url":        config.ProxyURL,
		"headers":          headers,
		"stats_file":       config.StatsFile,
		"log_level":        config.LogLevel,
		"debug":            config.Debug,
	}
}

// Summary 返回可以安全展示的配置，API Key 已遮蔽
func (c *Config) Summary() map[string]interface{} {
	m := structToMap(c)
	if c.APIKey != "" {
		m["api_key"] = providers.MaskAuthToken(c.APIKey)
	}
	return m
}
