package llm

import (
	"Shotshelf/types"
	"fmt"
	"strings"
)

var categoryGuidelines = []struct {
	Category string
	Hint     string
}{
	{types.CategoryTypography, "Focus on text styling, fonts, type specimens"},
	{types.CategoryUIDesign, "User interface elements, buttons, forms, components"},
	{types.CategoryAppDesign, "Complete mobile or desktop app screens"},
	{types.CategoryVisualDesign, "General visual compositions, posters, banners"},
	{types.CategoryIllustration, "Hand-drawn or digital illustrations, artwork"},
	{types.CategoryGraphicDesign, "Logos, print materials, marketing graphics"},
	{types.CategoryMotionDesign, "Animation frames, transitions, motion graphics"},
	{types.CategoryBranding, "Brand identities, style guides, brand assets"},
	{types.CategoryIconDesign, "Icon sets, individual icons"},
	{types.CategoryWebDesign, "Website designs, landing pages"},
	{types.CategoryMobileDesign, "Mobile app interfaces, responsive designs"},
	{types.CategoryDashboardDesign, "Admin panels, data dashboards, analytics UIs"},
	{types.CategoryLandingPage, "Marketing landing pages, hero sections"},
	{types.CategoryColorPalette, "Color scheme references, palette collections"},
	{types.CategoryLayout, "Grid systems, layout structures, wireframes"},
	{types.CategoryPhotography, "Photos, photo compositions"},
	{types.CategoryOther, "If none of the above categories fit"},
}

// categorizePrompt 固定提示词，要求模型只回一个分类名
var categorizePrompt = buildPrompt()

func buildPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this design screenshot and categorize it into ONE of these categories: %s.\n\n",
		strings.Join(types.Taxonomy(), ", "))
	b.WriteString("Guidelines:\n")
	for _, g := range categoryGuidelines {
		fmt.Fprintf(&b, "- %s: %s\n", g.Category, g.Hint)
	}
	b.WriteString("\nRespond with ONLY the category name, nothing else.")
	return b.String()
}
