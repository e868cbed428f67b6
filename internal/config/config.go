package config

import (
	"github.com/go-ini/ini"
	"github.com/sirupsen/logrus"
)

// Config svgrep工具配置
type Config struct {
	Search SearchConfig `ini:"search"`
	Output OutputConfig `ini:"output"`
	Log    LogConfig    `ini:"log"`
}

// SearchConfig 搜索配置
type SearchConfig struct {
	TrimSpace bool   `ini:"trim_space"` // 匹配前是否去除行首尾空白
	TrimSet   string `ini:"trim_set"`   // 视作空白的字符集合
	MaxLine   int    `ini:"max_line"`   // 单行最大字节数，0为不限制
}

// OutputConfig 输出配置
type OutputConfig struct {
	JSON      bool `ini:"json"`       // 以JSON形式输出命中
	CountOnly bool `ini:"count_only"` // 仅输出命中计数
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `ini:"level"` // 日志级别: debug/info/warn/error
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Search: SearchConfig{TrimSet: " \t"},
		Log:    LogConfig{Level: "info"},
	}
}

// Load 加载配置文件，未设置的字段保留默认值
func Load(filePath string) (*Config, error) {
	cfg := Default()

	err := ini.MapTo(cfg, filePath)
	if err != nil {
		logrus.Errorf("Failed to load config file: %v", err)
		return nil, err
	}

	logrus.Infof("Config loaded successfully from: %s", filePath)
	return cfg, nil
}
