package pipeline

import (
	"regexp"
	"strings"

	"github.com/bochaoli95/go-mdresume/internal/yamlutil"
)

// Front matter keys with special meaning to the renderer.
const (
	AttrName   = "name"
	AttrHeader = "header"
)

// frontMatterPattern matches a leading ---/--- block followed by the body.
// The closing delimiter must be followed by a newline.
var frontMatterPattern = regexp.MustCompile(`(?s)\A---\n(.*?)\n---\n(.*)\z`)

// HeaderItem is one fragment of the résumé contact line.
type HeaderItem struct {
	Text    string `yaml:"text"`
	Link    string `yaml:"link"`
	NewLine bool   `yaml:"newLine"`
}

// FrontMatter holds the attributes parsed from a document's leading block.
//
// Header keeps absent entries as nil so that neighbor lookups by index stay
// aligned with the source sequence.
type FrontMatter struct {
	Attributes map[string]string
	Header     []*HeaderItem
}

// Name returns the "name" attribute, or "" when absent.
func (f FrontMatter) Name() string {
	return f.Attributes[AttrName]
}

// Document is a raw résumé split into its front matter and Markdown body.
type Document struct {
	Body        string
	FrontMatter FrontMatter
}

// SplitFrontMatter separates the front matter block from the body.
// Input without a well-formed leading block is returned whole as the body
// with empty attributes; this function never fails.
func SplitFrontMatter(content string) Document {
	m := frontMatterPattern.FindStringSubmatch(content)
	if m == nil {
		return Document{
			Body:        content,
			FrontMatter: FrontMatter{Attributes: map[string]string{}},
		}
	}

	return Document{
		Body:        m[2],
		FrontMatter: parseFrontMatter(m[1]),
	}
}

// parseFrontMatter reads key: value lines. The header list is the only
// structured field and is handed to the YAML decoder as a block.
func parseFrontMatter(block string) FrontMatter {
	fm := FrontMatter{Attributes: map[string]string{}}
	lines := strings.Split(block, "\n")

	for i := 0; i < len(lines); i++ {
		key, value, ok := strings.Cut(lines[i], ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" {
			continue
		}

		if key == AttrHeader && !isIndented(lines[i]) {
			if value != "" {
				fm.Header = decodeHeader(value)
				fm.Attributes[key] = value
				continue
			}
			end := headerBlockEnd(lines, i+1)
			fm.Header = decodeHeader(strings.Join(lines[i+1:end], "\n"))
			i = end - 1
			continue
		}

		if value == "" {
			continue
		}
		fm.Attributes[key] = value
	}

	return fm
}

// headerBlockEnd returns the index of the first line after start that no
// longer belongs to the header list.
func headerBlockEnd(lines []string, start int) int {
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" || isIndented(line) || strings.HasPrefix(line, "-") {
			continue
		}
		return i
	}
	return len(lines)
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// decodeHeader decodes a YAML sequence of header items. Malformed input
// yields no header rather than an error.
func decodeHeader(block string) []*HeaderItem {
	if strings.TrimSpace(block) == "" {
		return nil
	}
	var items []*HeaderItem
	if err := yamlutil.Unmarshal([]byte(block), &items); err != nil {
		return nil
	}
	return items
}
