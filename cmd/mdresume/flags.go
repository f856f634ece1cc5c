package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// paragraphSpaceSentinel detects if --paragraph-space was explicitly set.
// 0 is a valid spacing, so an out-of-range value marks "not given".
const paragraphSpaceSentinel = -1.0

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// styleFlags holds the style parameter overrides.
type styleFlags struct {
	instance       string
	backbone       string
	noBackbone     bool
	themeColor     string
	fontSize       float64
	lineHeight     float64
	paragraphSpace float64
	paper          string
	fontEN         string
	fontCJK        string
}

// renderFlags holds flags for the render command.
type renderFlags struct {
	common   commonFlags
	style    styleFlags
	output   string
	pdf      bool
	fragment bool
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	common commonFlags
	style  styleFlags
	output string
}

// initFlags holds flags for the init command.
type initFlags struct {
	force bool
}

// addCommonFlags adds config and verbosity flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logging")
}

// addStyleFlags adds style parameter flags to a FlagSet.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVarP(&f.instance, "instance", "i", "", "instance id (preview, editor, ...)")
	fs.StringVar(&f.backbone, "backbone", "", "backbone style name or CSS file path")
	fs.BoolVar(&f.noBackbone, "no-backbone", false, "disable the backbone stylesheet")
	fs.StringVar(&f.themeColor, "theme-color", "", "theme color for headings and links")
	fs.Float64Var(&f.fontSize, "font-size", 0, "base font size in px")
	fs.Float64Var(&f.lineHeight, "line-height", 0, "base line height")
	fs.Float64Var(&f.paragraphSpace, "paragraph-space", paragraphSpaceSentinel, "space above each section heading in px")
	fs.StringVar(&f.paper, "paper", "", "paper size: A3, A4, A5, B4, B5, letter, legal, ledger")
	fs.StringVar(&f.fontEN, "font-en", "", "Latin font family")
	fs.StringVar(&f.fontCJK, "font-cjk", "", "CJK font family")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string, usage func(io.Writer), stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseFlags wraps parse failures so they map to the usage exit code.
// flag.ErrHelp is returned as is.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, []string, error) {
	fs := newFlagSet("render", printRenderUsage, stderr)
	f := &renderFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory (- for stdout)")
	fs.BoolVar(&f.pdf, "pdf", false, "print to PDF instead of HTML")
	fs.BoolVar(&f.fragment, "fragment", false, "write the HTML fragment without page or styles")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)

	if err := parseFlags(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCSSFlags parses css command flags.
func parseCSSFlags(args []string, stderr io.Writer) (*cssFlags, []string, error) {
	fs := newFlagSet("css", printCSSUsage, stderr)
	f := &cssFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")

	addCommonFlags(fs, &f.common)
	addStyleFlags(fs, &f.style)

	if err := parseFlags(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseInitFlags parses init command flags.
func parseInitFlags(args []string, stderr io.Writer) (*initFlags, []string, error) {
	fs := newFlagSet("init", printInitUsage, stderr)
	f := &initFlags{}

	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing file")

	if err := parseFlags(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
