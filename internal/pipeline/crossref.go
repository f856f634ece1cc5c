package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// [~label]: opens a definition.
	crossrefDefPattern = regexp.MustCompile(`\[~([A-Za-z0-9]+)\]:`)

	// [~label] anywhere in the text is an inline use.
	crossrefRefPattern = regexp.MustCompile(`\[~([A-Za-z0-9]+)\]`)

	// Closing tag of the block element that holds a definition.
	blockClosePattern = regexp.MustCompile(`</(?:p|li|dd|dt|td|th|h[1-6]|blockquote|div)>`)

	// Paragraphs and list items emptied by definition removal.
	emptyBlockPattern = regexp.MustCompile(`<p>\s*</p>\n?|<li>\s*</li>\n?`)
)

// Crossref is a labeled annotation numbered in extraction order.
type Crossref struct {
	ID      int
	Label   string
	Content string
}

// AnchorID is the id of the appendix entry.
func (c Crossref) AnchorID() string {
	return "crossref" + strconv.Itoa(c.ID)
}

// BacklinkID is the id of the inline superscript link.
func (c Crossref) BacklinkID() string {
	return "crossref-ref" + strconv.Itoa(c.ID)
}

// ResolveCrossrefs extracts [~label]: definitions, links every inline
// [~label] to its definition and appends the reference list.
//
// Extraction finishes before substitution, so a use may precede its
// definition. Undefined labels are left as literal text. When a label is
// defined twice the last definition wins the lookup; both are listed.
func ResolveCrossrefs(htmlContent string) (string, []Crossref) {
	htmlContent, refs := ExtractCrossrefs(htmlContent)
	if len(refs) == 0 {
		return htmlContent, nil
	}

	ids := make(map[string]int, len(refs))
	for _, ref := range refs {
		ids[ref.Label] = ref.ID
	}

	htmlContent = crossrefRefPattern.ReplaceAllStringFunc(htmlContent, func(match string) string {
		label := match[2 : len(match)-1]
		id, ok := ids[label]
		if !ok {
			return match
		}
		return fmt.Sprintf(`<sup class="crossref-ref"><a href="#crossref%d" id="crossref-ref%d">%s</a></sup>`, id, id, label)
	})

	return htmlContent + buildCrossrefList(refs), refs
}

// ExtractCrossrefs removes every definition from the text and returns them
// in left-to-right order. Content runs until a blank line, the next
// definition, or the end of the enclosing block element.
func ExtractCrossrefs(htmlContent string) (string, []Crossref) {
	var refs []Crossref
	var buf strings.Builder
	rest := htmlContent

	for {
		loc := crossrefDefPattern.FindStringSubmatchIndex(rest)
		if loc == nil {
			buf.WriteString(rest)
			break
		}

		buf.WriteString(rest[:loc[0]])
		label := rest[loc[2]:loc[3]]

		after := strings.TrimLeft(rest[loc[1]:], " \t\r\n")
		end := crossrefContentEnd(after)

		refs = append(refs, Crossref{
			ID:      len(refs),
			Label:   label,
			Content: strings.TrimSpace(after[:end]),
		})
		rest = after[end:]
	}

	if len(refs) == 0 {
		return htmlContent, nil
	}
	return emptyBlockPattern.ReplaceAllString(buf.String(), ""), refs
}

// crossrefContentEnd returns the offset where a definition's content stops.
func crossrefContentEnd(s string) int {
	end := len(s)
	for _, stop := range []string{"\n\n", "\n[~"} {
		if idx := strings.Index(s, stop); idx != -1 && idx < end {
			end = idx
		}
	}
	if loc := blockClosePattern.FindStringIndex(s); loc != nil && loc[0] < end {
		end = loc[0]
	}
	return end
}

// buildCrossrefList renders the appendix placed after all document content.
func buildCrossrefList(refs []Crossref) string {
	var buf strings.Builder

	buf.WriteString("\n\n<ul class=\"crossref-list\">")
	for _, ref := range refs {
		fmt.Fprintf(&buf, "\n<li id=\"%s\" class=\"crossref-item\" data-caption=\"%s\">", ref.AnchorID(), ref.Label)
		fmt.Fprintf(&buf, "\n<p>%s</p>", ref.Content)
		buf.WriteString("\n</li>")
	}
	buf.WriteString("\n</ul>")

	return buf.String()
}
