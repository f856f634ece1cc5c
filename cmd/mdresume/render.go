package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mdresume "github.com/bochaoli95/go-mdresume"
	"github.com/bochaoli95/go-mdresume/internal/fileutil"
)

// Sentinel errors for the render command.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// stdoutPath selects standard output as the destination.
const stdoutPath = "-"

func runRenderCommand(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return runRender(ctx, positional, flags, env)
}

// runRender renders one Markdown résumé to an HTML page, fragment or PDF.
func runRender(ctx context.Context, positional []string, flags *renderFlags, env *Environment) error {
	if len(positional) != 1 {
		return fmt.Errorf("%w: expected exactly one markdown file", ErrNoInput)
	}
	inputPath := positional[0]
	if !isMarkdownFile(inputPath) {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, inputPath)
	}

	s, err := loadSettings(flags.common, env)
	if err != nil {
		return err
	}
	toPDF := flags.pdf || s.cfg.PDF.Enabled
	if flags.fragment && flags.pdf {
		return fmt.Errorf("%w: --fragment and --pdf are mutually exclusive", ErrInvalidFlags)
	}
	if flags.fragment {
		toPDF = false
	}

	f, err := os.Open(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMarkdown, err)
	}
	defer func() { _ = f.Close() }()

	start := env.Now()
	renderer := mdresume.NewRenderer(mdresume.WithLogger(s.log))
	res, err := renderer.Render(ctx, f)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", inputPath, err)
	}

	var out []byte
	ext := ".html"
	switch {
	case flags.fragment:
		out = []byte(res.HTML)
	default:
		page, err := buildPage(ctx, s, flags.style, res)
		if err != nil {
			return err
		}
		out = []byte(page)

		if toPDF {
			ext = ".pdf"
			if out, err = printPDF(ctx, s, env, page); err != nil {
				return err
			}
		}
	}

	outputPath := resolveOutputPath(flags.output, inputPath, s.cfg.Output.DefaultDir, ext)
	if err := writeOutput(outputPath, out, env.Stdout); err != nil {
		return err
	}

	s.log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("crossrefs", len(res.Crossrefs)).
		Dur("elapsed", env.Now().Sub(start)).
		Msg("rendered")

	if !flags.common.quiet && outputPath != stdoutPath {
		fmt.Fprintf(env.Stdout, "%s -> %s\n", inputPath, outputPath)
	}
	return nil
}

// buildPage installs the instance styles and wraps res in a standalone page.
func buildPage(ctx context.Context, s *settings, sf styleFlags, res *mdresume.RenderResult) (string, error) {
	instance := resolveInstance(sf, s.cfg)

	sheet, err := installStyles(s, sf, instance)
	if err != nil {
		return "", err
	}

	return mdresume.ExportPage(ctx, res, &mdresume.PageOptions{
		Instance: instance,
		Styles:   sheet,
	})
}

func printPDF(ctx context.Context, s *settings, env *Environment, page string) ([]byte, error) {
	printer := env.NewPrinter(s.cfg.PDF.TimeoutDuration(), s.log)
	defer func() {
		if err := printer.Close(); err != nil {
			s.log.Warn().Err(err).Msg("closing browser")
		}
	}()

	return printer.Print(ctx, page)
}

// isMarkdownFile checks the extension case-insensitively.
func isMarkdownFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// resolveOutputPath decides where output goes:
//   - "-" writes to stdout
//   - an existing directory receives {input base}{ext}
//   - any other -o value is used as is
//   - otherwise {defaultDir}/{input base}{ext}, or next to the input
func resolveOutputPath(output, inputPath, defaultDir, ext string) string {
	base := fileutil.ReplaceExt(filepath.Base(inputPath), ext)

	if output != "" {
		if output == stdoutPath {
			return stdoutPath
		}
		if info, err := os.Stat(output); err == nil && info.IsDir() {
			return filepath.Join(output, base)
		}
		return output
	}

	if defaultDir != "" {
		return filepath.Join(defaultDir, base)
	}
	return fileutil.ReplaceExt(inputPath, ext)
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == stdoutPath {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
