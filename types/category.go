package types

// 截图分类体系，固定 17 个
const (
	CategoryTypography      = "Typography"
	CategoryUIDesign        = "UI Design"
	CategoryAppDesign       = "App Design"
	CategoryVisualDesign    = "Visual Design"
	CategoryIllustration    = "Illustration"
	CategoryGraphicDesign   = "Graphic Design"
	CategoryMotionDesign    = "Motion Design"
	CategoryBranding        = "Branding"
	CategoryIconDesign      = "Icon Design"
	CategoryWebDesign       = "Web Design"
	CategoryMobileDesign    = "Mobile Design"
	CategoryDashboardDesign = "Dashboard Design"
	CategoryLandingPage     = "Landing Page"
	CategoryColorPalette    = "Color Palette"
	CategoryLayout          = "Layout"
	CategoryPhotography     = "Photography"
	CategoryOther           = "Other"

	// CategoryUncategorized 导出时 category 为空的图片归到这一组，不属于分类体系
	CategoryUncategorized = "Uncategorized"
)

var taxonomy = []string{
	CategoryTypography,
	CategoryUIDesign,
	CategoryAppDesign,
	CategoryVisualDesign,
	CategoryIllustration,
	CategoryGraphicDesign,
	CategoryMotionDesign,
	CategoryBranding,
	CategoryIconDesign,
	CategoryWebDesign,
	CategoryMobileDesign,
	CategoryDashboardDesign,
	CategoryLandingPage,
	CategoryColorPalette,
	CategoryLayout,
	CategoryPhotography,
	CategoryOther,
}

var taxonomySet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(taxonomy))
	for _, c := range taxonomy {
		m[c] = struct{}{}
	}
	return m
}()

// Taxonomy 返回分类体系的副本，顺序固定
func Taxonomy() []string {
	out := make([]string, len(taxonomy))
	copy(out, taxonomy)
	return out
}

// IsCategory 大小写敏感的精确匹配
func IsCategory(s string) bool {
	_, ok := taxonomySet[s]
	return ok
}
