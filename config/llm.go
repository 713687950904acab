package config

import "time"

// LLMConfig 视觉模型配置，APIKey 为空时分类走关键词兜底
type LLMConfig struct {
	APIKey    string        `json:"api_key" yaml:"api_key"`
	BaseURL   string        `json:"base_url" yaml:"base_url"`
	Model     string        `json:"model" yaml:"model"`
	MaxTokens int64         `json:"max_tokens" yaml:"max_tokens"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

func (l *LLMConfig) setDefaults() {
	if l.BaseURL == "" {
		l.BaseURL = "https://api.openai.com/v1"
	}
	if l.Model == "" {
		l.Model = "gpt-4o-mini"
	}
	if l.MaxTokens == 0 {
		l.MaxTokens = 50
	}
	if l.Timeout == 0 {
		l.Timeout = 30 * time.Second
	}
}

func ProvideLLMConfig(cfg *Config) *LLMConfig {
	return cfg.LLM
}
