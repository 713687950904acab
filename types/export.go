package types

type ExportRequest struct {
	GroupId          string `json:"groupId"`
	GroupName        string `json:"groupName"`
	FigmaAccessToken string `json:"figmaAccessToken"`
}

type ManifestImage struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type ManifestCategory struct {
	Category string          `json:"category"`
	Images   []ManifestImage `json:"images"`
}

// ExportManifest 按分类整理好的图片清单，供设计工具插件摆放图片
type ExportManifest struct {
	FileKey    string             `json:"fileKey"`
	Categories []ManifestCategory `json:"categories"`
}

type ExportResult struct {
	FileKey  string
	FileUrl  string
	Manifest *ExportManifest
}

type ExportResp struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	FigmaFileKey string          `json:"figmaFileKey"`
	FigmaUrl     string          `json:"figmaUrl"`
	Manifest     *ExportManifest `json:"manifest"`
}
