package llm

import (
	"Shotshelf/types"
	"strings"
)

// 关键词按优先级排列，先命中先返回
var fallbackRules = []struct {
	Keywords []string
	Category string
}{
	{[]string{"ui", "button", "form"}, types.CategoryUIDesign},
	{[]string{"app", "mobile"}, types.CategoryAppDesign},
	{[]string{"web", "landing"}, types.CategoryWebDesign},
	{[]string{"logo", "brand"}, types.CategoryBranding},
	{[]string{"icon"}, types.CategoryIconDesign},
	{[]string{"dashboard", "admin"}, types.CategoryDashboardDesign},
}

// FallbackCategory 没有模型可用时按 URL 关键词粗分类
func FallbackCategory(imageURL string) string {
	url := strings.ToLower(imageURL)
	for _, rule := range fallbackRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(url, kw) {
				return rule.Category
			}
		}
	}
	return types.CategoryOther
}
