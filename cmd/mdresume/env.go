package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	mdresume "github.com/bochaoli95/go-mdresume"
)

// Printer turns an exported page into PDF bytes.
type Printer interface {
	Print(ctx context.Context, page string) ([]byte, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Printer = (*mdresume.PDFPrinter)(nil)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, environment lookup, asset loading and PDF printing.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	Environ     func() []string
	AssetLoader mdresume.AssetLoader
	NewPrinter  func(timeout time.Duration, logger zerolog.Logger) Printer
}

// DefaultEnv returns production environment with embedded assets.
func DefaultEnv() *Environment {
	// Error ignored: an empty base path only uses embedded assets.
	loader, _ := mdresume.NewAssetLoader("")

	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Environ:     os.Environ,
		AssetLoader: loader,
		NewPrinter: func(timeout time.Duration, logger zerolog.Logger) Printer {
			return mdresume.NewPDFPrinter(timeout, mdresume.WithPDFLogger(logger))
		},
	}
}
