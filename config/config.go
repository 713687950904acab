package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App        *App         `json:"app" yaml:"app"`
	Log        *Log         `json:"log" yaml:"log"`
	Database   *Database    `json:"database" yaml:"database"`
	Redis      *Redis       `json:"redis" yaml:"redis"`
	Oss        *OssConfig   `json:"oss" yaml:"oss"`
	LLM        *LLMConfig   `json:"llm" yaml:"llm"`
	Figma      *FigmaConfig `json:"figma" yaml:"figma"`
	Categorize *Categorize  `json:"categorize" yaml:"categorize"`
	Server     *Server      `json:"server" yaml:"server"`
}

type Server struct {
	Http               int `json:"http" yaml:"http"`
	RateLimitPerMinute int `json:"rate_limit_per_minute" yaml:"rate_limit_per_minute"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

// Parse 解析 yaml 内容，补齐默认值并应用环境变量覆盖
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.setDefaults()
	conf.applyEnvOverrides()
	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

func (c *Config) setDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Log == nil {
		c.Log = &Log{}
	}
	if c.Database == nil {
		c.Database = &Database{}
	}
	if c.Database.Driver == "" {
		c.Database.Driver = DriverMySQL
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if c.LLM == nil {
		c.LLM = &LLMConfig{}
	}
	c.LLM.setDefaults()
	if c.Figma == nil {
		c.Figma = &FigmaConfig{}
	}
	c.Figma.setDefaults()
	if c.Categorize == nil {
		c.Categorize = &Categorize{}
	}
	c.Categorize.setDefaults()
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Server.RateLimitPerMinute == 0 {
		c.Server.RateLimitPerMinute = 30
	}
}

// applyEnvOverrides 密钥类配置允许通过环境变量注入，避免写进配置文件
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("OSS_ACCESS_KEY_ID"); v != "" {
		c.Oss.AccessKeyID = v
	}
	if v := os.Getenv("OSS_ACCESS_KEY_SECRET"); v != "" {
		c.Oss.AccessKeySecret = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
}
