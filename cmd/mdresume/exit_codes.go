package main

import (
	"context"
	"errors"
	"os"

	mdresume "github.com/bochaoli95/go-mdresume"
	"github.com/bochaoli95/go-mdresume/internal/config"
	"github.com/bochaoli95/go-mdresume/internal/hints"
)

// Exit codes for the mdresume CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful render
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or style values
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdresume.ErrBrowserConnect) ||
		errors.Is(err, mdresume.ErrPageCreate) ||
		errors.Is(err, mdresume.ErrPageLoad) ||
		errors.Is(err, mdresume.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdresume.ErrDocumentTooLarge) ||
		errors.Is(err, mdresume.ErrNilStyleParameters) ||
		errors.Is(err, mdresume.ErrInvalidInstanceID) ||
		errors.Is(err, mdresume.ErrInvalidThemeColor) ||
		errors.Is(err, mdresume.ErrInvalidLineHeight) ||
		errors.Is(err, mdresume.ErrInvalidFontSize) ||
		errors.Is(err, mdresume.ErrInvalidParagraphSpace) ||
		errors.Is(err, mdresume.ErrInvalidFont) ||
		errors.Is(err, mdresume.ErrInvalidPaper) ||
		errors.Is(err, mdresume.ErrStyleNotFound) ||
		errors.Is(err, mdresume.ErrTemplateNotFound) ||
		errors.Is(err, mdresume.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrConfigExists) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint to print after err, or "".
func hintFor(err error, env *Environment) string {
	switch {
	case errors.Is(err, mdresume.ErrBrowserConnect):
		return hints.ForBrowserConnect(env.Getenv, hints.InContainer())
	case errors.Is(err, mdresume.ErrPageLoad) && errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound("")
	case errors.Is(err, mdresume.ErrStyleNotFound):
		return hints.ForStyleNotFound(mdresume.BuiltinBackbones())
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
