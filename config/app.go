package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// HashSalt 生成对象存储文件名使用的 hashids 盐
	HashSalt string `json:"hash_salt" yaml:"hash_salt"`
	// MaxUploadMB 单张截图大小上限
	MaxUploadMB int `json:"max_upload_mb" yaml:"max_upload_mb"`
}

// MaxUploadBytes 默认 10MB
func (a *App) MaxUploadBytes() int64 {
	if a.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return int64(a.MaxUploadMB) << 20
}
