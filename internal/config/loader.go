package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig 从文件和环境变量加载配置
func LoadConfig(configPath string) (*Config, error) {
	return Load(viper.New(), configPath)
}

// Load 使用给定的 viper 实例加载配置，调用方可以预先绑定命令行标志。
// 优先级：命令行标志 > 环境变量 > 配置文件 > 默认值。
func Load(v *viper.Viper, configPath string) (*Config, error) {
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
	}

	// 读取环境变量，COHERE_API_KEY 作为 api_key 的后备
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api_key", EnvPrefix+"_API_KEY", "COHERE_API_KEY"); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		// 未指定路径且找不到配置文件时使用默认值
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.Headers == nil {
		config.Headers = make(map[string]string)
	}

	return &config, nil
}
