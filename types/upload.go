package types

type ImageItem struct {
	Id        string  `json:"id"`
	GroupId   string  `json:"group_id"`
	FilePath  string  `json:"file_path"`
	FileName  string  `json:"file_name"`
	Category  *string `json:"category"`
	Url       string  `json:"url"`
	CreatedAt string  `json:"created_at"`
}

// UploadFailure 单个文件上传失败的原因
type UploadFailure struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

type UploadImagesResp struct {
	Images     []ImageItem        `json:"images"`
	Failed     []UploadFailure    `json:"failed"`
	Categorize *CategorizeOutcome `json:"categorize,omitempty"`
}

type ListImagesReq struct {
	Category string `form:"category"`
}
