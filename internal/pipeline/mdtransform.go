package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// A cross-reference definition at the start of a line. Up to three
	// spaces of indentation, same as a Markdown link reference definition.
	crossrefDefLine = regexp.MustCompile(`(?m)^( {0,3})\[~([A-Za-z0-9]+)\]:`)

	// A definition description line: ':' in column 0 and at least one space.
	descriptionLine = regexp.MustCompile(`^:[ \t]`)

	// Opening or closing fence of a fenced code block.
	fenceLine = regexp.MustCompile(`^ {0,3}(` + "```" + `+|~~~+)`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// ResumePreprocessor prepares a résumé body for Markdown conversion.
type ResumePreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for conversion.
func (p *ResumePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = EscapeCrossrefDefinitions(content)
	return SeparateDefinitionTerms(content)
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// EscapeCrossrefDefinitions backslash-escapes the bracket of [~label]: lines.
// Without it "[~x]: https://example.com" parses as a link reference
// definition and disappears from the HTML before cross-references resolve.
func EscapeCrossrefDefinitions(content string) string {
	return crossrefDefLine.ReplaceAllString(content, `$1\[~$2]:`)
}

// SeparateDefinitionTerms inserts a blank line before a term that directly
// follows a description, so "A\n: one\nB\n: two" yields two terms instead
// of folding B into the first description as a lazy continuation line.
// Fenced code blocks are left alone.
func SeparateDefinitionTerms(content string) string {
	if !strings.Contains(content, "\n:") {
		return content
	}

	lines := strings.Split(content, "\n")
	var buf strings.Builder
	buf.Grow(len(content) + 16)

	var fence string
	inDescription := false

	for i, line := range lines {
		if i > 0 {
			buf.WriteByte('\n')
		}

		if m := fenceLine.FindStringSubmatch(line); m != nil {
			switch {
			case fence == "":
				fence = m[1]
			case m[1][0] == fence[0] && len(m[1]) >= len(fence):
				fence = ""
			}
			inDescription = false
			buf.WriteString(line)
			continue
		}
		if fence != "" {
			buf.WriteString(line)
			continue
		}

		switch {
		case descriptionLine.MatchString(line):
			inDescription = true
		case strings.TrimSpace(line) == "":
			inDescription = false
		case line[0] == ' ' || line[0] == '\t':
			// indented continuation keeps the current state
		default:
			if inDescription && i+1 < len(lines) && descriptionLine.MatchString(lines[i+1]) {
				buf.WriteByte('\n')
			}
			inDescription = false
		}
		buf.WriteString(line)
	}

	return buf.String()
}
