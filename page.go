package mdresume

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/net/html"

	"github.com/bochaoli95/go-mdresume/internal/assets"
	"github.com/bochaoli95/go-mdresume/internal/pipeline"
)

const (
	defaultPageTitle = "Resume"
	defaultPageLang  = "en"
)

// PageOptions controls ExportPage.
type PageOptions struct {
	// Instance selects the root element id. Defaults to InstancePreview.
	Instance string

	// Title overrides the <title>. By default it is the document name,
	// else the first <h1>, else "Resume".
	Title string

	// Lang is the <html lang> attribute. Defaults to "en".
	Lang string

	// Template is the page template source. Empty uses the embedded page.
	Template string

	// Styles are injected into the page head. May be nil.
	Styles *StyleSheet
}

// pageData is the data handed to the page template.
type pageData struct {
	Lang   string
	Title  string
	RootID string
	Body   template.HTML
}

// ExportPage wraps a rendered résumé in a standalone HTML page rooted at the
// instance's element, with the installed styles in <head>.
func ExportPage(ctx context.Context, res *RenderResult, opts *PageOptions) (string, error) {
	if res == nil {
		return "", ErrNilDocument
	}
	if opts == nil {
		opts = &PageOptions{}
	}

	instance := opts.Instance
	if instance == "" {
		instance = InstancePreview
	}
	if err := ValidateInstanceID(instance); err != nil {
		return "", err
	}

	src := opts.Template
	if src == "" {
		var err error
		if src, err = assets.LoadTemplate(assets.DefaultTemplateName); err != nil {
			return "", fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
		}
	}

	tmpl, err := template.New("page").Parse(src)
	if err != nil {
		return "", fmt.Errorf("%w: parsing template: %v", ErrPageRender, err)
	}

	data := pageData{
		Lang:   orDefault(opts.Lang, defaultPageLang),
		Title:  orDefault(opts.Title, pageTitle(res)),
		RootID: RootID(instance),
		Body:   template.HTML(res.HTML), // #nosec G203 -- rendered résumé HTML is trusted output
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	page := buf.String()
	if opts.Styles != nil {
		injector := &pipeline.CSSInjection{}
		page = injector.InjectCSS(ctx, page, opts.Styles.CSS())
	}
	return page, nil
}

// pageTitle picks the document name, else the text of the first <h1>.
func pageTitle(res *RenderResult) string {
	if name := strings.TrimSpace(res.Document.FrontMatter.Name()); name != "" {
		return name
	}
	if h1 := firstHeadingText(res.HTML); h1 != "" {
		return h1
	}
	return defaultPageTitle
}

// firstHeadingText returns the collapsed text content of the first <h1>.
func firstHeadingText(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "h1" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := find(c); found != nil {
				return found
			}
		}
		return nil
	}

	h1 := find(doc)
	if h1 == nil {
		return ""
	}

	var text strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(h1)

	return strings.Join(strings.Fields(text.String()), " ")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
