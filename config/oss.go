package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
	// PublicBaseURL 对外访问域名（CDN），为空时使用 https://<bucket>.<endpoint>
	PublicBaseURL string `json:"public_base_url" yaml:"public_base_url"`
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
