package types

type CategorizeRequest struct {
	GroupId string `json:"groupId"`
}

type CategorizeCounts struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// CategorizeOutcome Pending 为 0 表示没有待分类图片
type CategorizeOutcome struct {
	Pending int              `json:"pending"`
	Results CategorizeCounts `json:"results"`
}

type CategorizeMessageResp struct {
	Message string `json:"message"`
}

type CategorizeResultResp struct {
	Message string           `json:"message"`
	Results CategorizeCounts `json:"results"`
}
