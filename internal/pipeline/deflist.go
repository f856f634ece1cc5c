package pipeline

import (
	"regexp"
	"strings"
)

var definitionListPattern = regexp.MustCompile(`(?s)<dl>.*?</dl>`)

// Boundary between a description and the next term inside one <dl>.
const (
	termBoundary      = "</dd>\n<dt>"
	splitTermBoundary = "</dd>\n</dl>\n<dl>\n<dt>"
)

// ResolveDefinitionLists splits every <dl> so each term starts its own list.
// HTML without a <dl> is returned unchanged.
func ResolveDefinitionLists(htmlContent string) string {
	if !strings.Contains(htmlContent, "<dl>") {
		return htmlContent
	}

	return definitionListPattern.ReplaceAllStringFunc(htmlContent, func(dl string) string {
		return strings.ReplaceAll(dl, termBoundary, splitTermBoundary)
	})
}
