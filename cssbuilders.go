package mdresume

import (
	"fmt"
	"strconv"
	"strings"
)

// Line height multipliers relative to body text.
const (
	headingLineHeightScale = 1.154
	dlLineHeightScale      = 1.038
)

// BuildStyleCSS generates the CSS for one instance from style parameters.
// Each rule is self-terminating; the rules are concatenated without
// separators. The print page size is emitted only for the preview instance.
// The caller is responsible for validating p.
func BuildStyleCSS(p *StyleParameters, instance string) string {
	root := RootID(instance)

	css := buildFontFamilyCSS(p, root) +
		buildFontSizeCSS(p, root) +
		buildThemeColorCSS(p, root) +
		buildParagraphSpaceCSS(p, root) +
		buildLineHeightCSS(p, root)

	if instance == InstancePreview {
		css += buildPaperCSS(p)
	}
	return css
}

// ScopeBackboneCSS rewrites the preview root selector to the instance's root.
// CSS for the preview instance is returned unchanged.
func ScopeBackboneCSS(css, instance string) string {
	if instance == InstancePreview {
		return css
	}
	return strings.ReplaceAll(css, PreviewSelector, "#"+RootID(instance))
}

// buildThemeColorCSS colors links outside the header and headings 1-3,
// and underlines headings 1-2.
func buildThemeColorCSS(p *StyleParameters, root string) string {
	c := p.ThemeColor
	return fmt.Sprintf("#%s :not(.resume-header-item) > a { color: %s }", root, c) +
		fmt.Sprintf("#%[1]s h1, #%[1]s h2, #%[1]s h3 { color: %[2]s }", root, c) +
		fmt.Sprintf("#%[1]s h1, #%[1]s h2 { border-bottom-color: %[2]s }", root, c)
}

// buildLineHeightCSS scales the base line height for headings and lists.
func buildLineHeightCSS(p *StyleParameters, root string) string {
	h := p.LineHeight
	return fmt.Sprintf("#%[1]s p, #%[1]s li { line-height: %[2]s }", root, fixed2(h)) +
		fmt.Sprintf("#%[1]s h2, #%[1]s h3 { line-height: %[2]s }", root, fixed2(h*headingLineHeightScale)) +
		fmt.Sprintf("#%s dl { line-height: %s }", root, fixed2(h*dlLineHeightScale))
}

// buildParagraphSpaceCSS sets the gap above each section heading.
func buildParagraphSpaceCSS(p *StyleParameters, root string) string {
	return fmt.Sprintf("#%s h2 { margin-top: %spx }", root, number(p.ParagraphSpace))
}

// buildFontFamilyCSS stacks the Latin font before the CJK font.
func buildFontFamilyCSS(p *StyleParameters, root string) string {
	return fmt.Sprintf("#%s { font-family: %s, %s }", root, p.FontEN.Resolve(), p.FontCJK.Resolve())
}

func buildFontSizeCSS(p *StyleParameters, root string) string {
	return fmt.Sprintf("#%s { font-size: %spx }", root, number(p.FontSize))
}

// buildPaperCSS sets the printed page size.
func buildPaperCSS(p *StyleParameters) string {
	return fmt.Sprintf("@media print { @page { size: %s; } }", p.Paper)
}

// fixed2 formats v with exactly two decimals.
func fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// number formats v without trailing zeros (15 -> "15", 5.5 -> "5.5").
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
