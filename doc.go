// Package mdresume renders Markdown résumés to presentation HTML and
// generates the instance-scoped CSS that styles them.
//
// # Quick Start
//
//	r := mdresume.NewRenderer()
//	res, err := r.RenderString(ctx, raw)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.HTML)
//
// RenderResume is the one-call form: it never fails and falls back to the
// escaped body when conversion breaks.
//
// # Document Format
//
// A document may open with front matter between two "---" lines. Each line
// is "key: value"; the "name" key becomes the résumé title and the "header"
// key holds a YAML list of contact items:
//
//	---
//	name: Ada Lovelace
//	header:
//	  - text: ada@example.com
//	    link: mailto:ada@example.com
//	  - text: London
//	    newLine: true
//	---
//
// In the body, "[~label]: text" defines a cross-reference and "[~label]"
// cites it. Definitions are collected into a list at the end.
//
// # Rendering Pipeline
//
//  1. Front matter split (line endings normalized first)
//  2. Markdown to HTML via goldmark (GFM, definition lists, highlighting)
//  3. Definition-list repair: one term per <dl>
//  4. Cross-reference resolution
//  5. Header synthesis from the front matter
//
// The HTML passes are order dependent and always run in this order.
//
// # Styles
//
// Every rendered view is an "instance" rooted at the element
// #vue-smart-pages-{instance}. A Styler installs two style blocks per
// instance on a StyleSurface:
//
//	sheet := mdresume.NewStyleSheet()
//	styler := mdresume.NewStyler(sheet)
//	_ = styler.GenerateStyleCSS(mdresume.DefaultStyleParameters(), mdresume.InstancePreview)
//	_ = styler.GenerateBackboneCSS(backbone, mdresume.InstancePreview)
//
// Backbone stylesheets are written against #vue-smart-pages-preview and
// rescoped for other instances. Installing again replaces the previous
// block, so styles never accumulate.
//
// # Export
//
// ExportPage wraps rendered HTML in a standalone page with the installed
// styles, and PDFPrinter prints that page with headless Chrome (go-rod).
// Set ROD_BROWSER_BIN to use an installed Chrome, and ROD_NO_SANDBOX=1 in
// containers.
package mdresume
