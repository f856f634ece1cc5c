package mdresume

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/bochaoli95/go-mdresume/internal/pipeline"
)

// Document model shared with the rendering pipeline.
type (
	// HeaderItem is one fragment of the résumé contact line.
	HeaderItem = pipeline.HeaderItem

	// FrontMatter holds the parsed front matter attributes and header list.
	FrontMatter = pipeline.FrontMatter

	// Document is a raw résumé split into front matter and Markdown body.
	Document = pipeline.Document

	// Crossref is a numbered cross-reference extracted from the document.
	Crossref = pipeline.Crossref
)

// Instance identifiers used by the editor and the print preview.
const (
	InstancePreview = "preview"
	InstanceEditor  = "editor"
)

// Selector and element id prefixes for instance-scoped styles.
const (
	rootIDPrefix          = "vue-smart-pages-"
	dynamicStyleIDPrefix  = "markdown-resume-dynamic-"
	backboneStyleIDPrefix = "markdown-resume-backbone-"

	// PreviewSelector is the root selector backbone stylesheets are authored against.
	PreviewSelector = "#" + rootIDPrefix + InstancePreview
)

var instanceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// RootID returns the id of the element that roots an instance's DOM.
func RootID(instance string) string {
	return rootIDPrefix + instance
}

// DynamicStyleID returns the style element id for generated CSS.
func DynamicStyleID(instance string) string {
	return dynamicStyleIDPrefix + instance
}

// BackboneStyleID returns the style element id for backbone CSS.
func BackboneStyleID(instance string) string {
	return backboneStyleIDPrefix + instance
}

// ValidateInstanceID checks that an instance id is safe to embed in a selector.
func ValidateInstanceID(instance string) error {
	if !instanceIDPattern.MatchString(instance) {
		return fmt.Errorf("%w: %q", ErrInvalidInstanceID, instance)
	}
	return nil
}

// Paper size tokens accepted by the CSS @page size descriptor.
const (
	PaperA3     = "A3"
	PaperA4     = "A4"
	PaperA5     = "A5"
	PaperB4     = "B4"
	PaperB5     = "B5"
	PaperLetter = "letter"
	PaperLegal  = "legal"
	PaperLedger = "ledger"
)

// isValidPaper checks if paper is a known page size (case-insensitive).
func isValidPaper(paper string) bool {
	switch strings.ToLower(paper) {
	case "a3", "a4", "a5", "b4", "b5", PaperLetter, PaperLegal, PaperLedger:
		return true
	}
	return false
}

// Bounds for numeric style parameters.
const (
	MaxLineHeight     = 10.0
	MaxFontSize       = 200.0 // px
	MaxParagraphSpace = 500.0 // px
	maxFontNameLength = 200
)

// Font names a typeface by display name and optional CSS family.
type Font struct {
	Name       string `yaml:"name"`
	FontFamily string `yaml:"fontFamily,omitempty"`
}

// Resolve returns the family to put in a font stack, preferring FontFamily.
func (f Font) Resolve() string {
	if f.FontFamily != "" {
		return f.FontFamily
	}
	return f.Name
}

// StyleParameters drives the generated per-instance CSS.
type StyleParameters struct {
	ThemeColor     string  `yaml:"themeColor"`
	LineHeight     float64 `yaml:"lineHeight"`
	ParagraphSpace float64 `yaml:"paragraphSpace"` // px above each h2
	FontEN         Font    `yaml:"fontEN"`
	FontCJK        Font    `yaml:"fontCJK"`
	FontSize       float64 `yaml:"fontSize"` // px
	Paper          string  `yaml:"paper"`
}

// DefaultStyleParameters returns the style a new résumé starts with.
func DefaultStyleParameters() *StyleParameters {
	return &StyleParameters{
		ThemeColor:     "#377bb5",
		LineHeight:     1.3,
		ParagraphSpace: 5,
		FontEN:         Font{Name: "Arial"},
		FontCJK:        Font{Name: "Noto Sans SC"},
		FontSize:       15,
		Paper:          PaperA4,
	}
}

// colorPattern accepts hex, named and functional (rgb/hsl) colors.
var colorPattern = regexp.MustCompile(`^(?:#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|[a-zA-Z]+|(?:rgba?|hsla?)\([0-9.,%\s/]+\))$`)

// Validate checks that every value is safe to interpolate into CSS.
// Returns ErrNilStyleParameters if p is nil.
func (p *StyleParameters) Validate() error {
	if p == nil {
		return ErrNilStyleParameters
	}

	if !colorPattern.MatchString(p.ThemeColor) {
		return fmt.Errorf("%w: %q", ErrInvalidThemeColor, p.ThemeColor)
	}

	if !inRange(p.LineHeight, 0, MaxLineHeight) || p.LineHeight == 0 {
		return fmt.Errorf("%w: %v (must be > 0 and <= %v)", ErrInvalidLineHeight, p.LineHeight, MaxLineHeight)
	}

	if !inRange(p.FontSize, 0, MaxFontSize) || p.FontSize == 0 {
		return fmt.Errorf("%w: %v (must be > 0 and <= %v)", ErrInvalidFontSize, p.FontSize, MaxFontSize)
	}

	if !inRange(p.ParagraphSpace, 0, MaxParagraphSpace) {
		return fmt.Errorf("%w: %v (must be between 0 and %v)", ErrInvalidParagraphSpace, p.ParagraphSpace, MaxParagraphSpace)
	}

	if err := validateFont("fontEN", p.FontEN); err != nil {
		return err
	}
	if err := validateFont("fontCJK", p.FontCJK); err != nil {
		return err
	}

	if !isValidPaper(p.Paper) {
		return fmt.Errorf("%w: %q", ErrInvalidPaper, p.Paper)
	}

	return nil
}

func inRange(v, lo, hi float64) bool {
	return !math.IsNaN(v) && v >= lo && v <= hi
}

// validateFont rejects empty families and characters that end a declaration.
func validateFont(role string, f Font) error {
	family := f.Resolve()
	if strings.TrimSpace(family) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidFont, role)
	}
	if len(family) > maxFontNameLength {
		return fmt.Errorf("%w: %s exceeds %d chars", ErrInvalidFont, role, maxFontNameLength)
	}
	if strings.ContainsAny(family, "{};<>\\\n\r") {
		return fmt.Errorf("%w: %s %q", ErrInvalidFont, role, family)
	}
	return nil
}
