package config

import "time"

// Categorize 分类流水线配置
type Categorize struct {
	// Workers 并发分类的协程数，1 即逐张串行
	Workers     int           `json:"workers" yaml:"workers"`
	ItemTimeout time.Duration `json:"item_timeout" yaml:"item_timeout"`
	// ManifestTTL 导出清单在 redis 中的保留时间
	ManifestTTL time.Duration `json:"manifest_ttl" yaml:"manifest_ttl"`
}

func (c *Categorize) setDefaults() {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.ItemTimeout == 0 {
		c.ItemTimeout = 45 * time.Second
	}
	if c.ManifestTTL == 0 {
		c.ManifestTTL = 24 * time.Hour
	}
}

func ProvideCategorizeConfig(cfg *Config) *Categorize {
	return cfg.Categorize
}
