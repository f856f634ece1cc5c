package pipeline

import (
	"html"
	"strings"
)

// CSS classes used by the header block.
const (
	headerClass      = "resume-header"
	headerItemClass  = "resume-header-item"
	noSeparatorClass = "no-separator"
)

// ResolveHeader prepends the résumé header built from the front matter:
// the name as <h1>, then one span per header item.
//
// Items are visited by their original index. A nil item renders nothing but
// still occupies its index, so only the item directly after i decides
// whether i drops its separator. The last present item never has one.
func ResolveHeader(htmlContent string, fm FrontMatter) string {
	var buf strings.Builder

	buf.WriteString(`<div class="` + headerClass + `">`)

	if name := fm.Name(); name != "" {
		buf.WriteString("<h1>" + name + "</h1>\n")
	}

	last := lastPresent(fm.Header)
	for i, item := range fm.Header {
		if item == nil {
			continue
		}

		if item.NewLine {
			buf.WriteString("<br>\n")
		}

		class := headerItemClass
		if i == last || startsNewLine(fm.Header, i+1) {
			class += " " + noSeparatorClass
		}
		buf.WriteString(`<span class="` + class + `">`)

		if item.Link != "" {
			buf.WriteString(`<a href="` + html.EscapeString(item.Link) + `" target="_blank" rel="noopener noreferrer">`)
			buf.WriteString(item.Text)
			buf.WriteString("</a>")
		} else {
			buf.WriteString(item.Text)
		}

		buf.WriteString("</span>\n")
	}

	buf.WriteString("</div>")

	return buf.String() + htmlContent
}

// startsNewLine reports whether the item at index i exists and opens a line.
func startsNewLine(items []*HeaderItem, i int) bool {
	return i < len(items) && items[i] != nil && items[i].NewLine
}

func lastPresent(items []*HeaderItem) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] != nil {
			return i
		}
	}
	return -1
}
