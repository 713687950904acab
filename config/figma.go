package config

import "time"

type FigmaConfig struct {
	BaseURL     string        `json:"base_url" yaml:"base_url"`
	FileURLBase string        `json:"file_url_base" yaml:"file_url_base"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

func (f *FigmaConfig) setDefaults() {
	if f.BaseURL == "" {
		f.BaseURL = "https://api.figma.com"
	}
	if f.FileURLBase == "" {
		f.FileURLBase = "https://www.figma.com/file"
	}
	if f.Timeout == 0 {
		f.Timeout = 20 * time.Second
	}
}

func ProvideFigmaConfig(cfg *Config) *FigmaConfig {
	return cfg.Figma
}
