package mdresume

import (
	"errors"

	"github.com/bochaoli95/go-mdresume/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrNilDocument      = errors.New("document reader cannot be nil")
	ErrDocumentTooLarge = errors.New("document exceeds maximum size")
	ErrHTMLConversion   = pipeline.ErrHTMLConversion
	ErrPDFGeneration    = errors.New("PDF generation failed")
	ErrBrowserConnect   = errors.New("failed to connect to browser")
	ErrPageCreate       = errors.New("failed to create browser page")
	ErrPageLoad         = errors.New("failed to load page")
	ErrPageRender       = errors.New("page template rendering failed")

	// Style generation errors.
	ErrNilStyleParameters    = errors.New("style parameters cannot be nil")
	ErrInvalidInstanceID     = errors.New("invalid instance id")
	ErrInvalidThemeColor     = errors.New("invalid theme color")
	ErrInvalidLineHeight     = errors.New("invalid line height")
	ErrInvalidFontSize       = errors.New("invalid font size")
	ErrInvalidParagraphSpace = errors.New("invalid paragraph space")
	ErrInvalidFont           = errors.New("invalid font")
	ErrInvalidPaper          = errors.New("invalid paper size")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
