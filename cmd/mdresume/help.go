package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdresume <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render a markdown resume to HTML or PDF")
	fmt.Fprintln(w, "  css        Print the CSS generated for an instance")
	fmt.Fprintln(w, "  init       Write a starter config file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdresume help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdresume render <file.md> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a markdown resume with front matter to a standalone HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file or directory (- for stdout)")
	fmt.Fprintln(w, "      --pdf                   Print to PDF with headless Chrome")
	fmt.Fprintln(w, "      --fragment              Write the HTML fragment only")
	fmt.Fprintln(w)
	printStyleFlags(w)
	printCommonFlags(w)
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdresume css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the dynamic and backbone CSS for an instance.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file (default stdout)")
	fmt.Fprintln(w)
	printStyleFlags(w)
	printCommonFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdresume init [path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Write the default configuration to path (default %s).\n", defaultInitPath)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --force                 Overwrite an existing file")
}

func printStyleFlags(w io.Writer) {
	fmt.Fprintln(w, "Style:")
	fmt.Fprintln(w, "  -i, --instance <id>         Instance id (default preview)")
	fmt.Fprintln(w, "      --backbone <s>          Backbone style name or CSS file path")
	fmt.Fprintln(w, "      --no-backbone           Disable the backbone stylesheet")
	fmt.Fprintln(w, "      --theme-color <s>       Theme color (default #377bb5)")
	fmt.Fprintln(w, "      --font-size <px>        Base font size (default 15)")
	fmt.Fprintln(w, "      --line-height <f>       Base line height (default 1.3)")
	fmt.Fprintln(w, "      --paragraph-space <px>  Space above section headings (default 5)")
	fmt.Fprintln(w, "      --paper <s>             Paper: A3, A4, A5, B4, B5, letter, legal, ledger")
	fmt.Fprintln(w, "      --font-en <s>           Latin font family (default Arial)")
	fmt.Fprintln(w, "      --font-cjk <s>          CJK font family (default Noto Sans SC)")
	fmt.Fprintln(w)
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Config:")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show debug logging")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDRESUME_CONFIG, MDRESUME_LOG_LEVEL, MDRESUME_BACKBONE, MDRESUME_OUTPUT_DIR")
}

// runHelp prints help for a specific command.
// Returns false if the command is unknown.
func runHelp(args []string, env *Environment) bool {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return true
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdresume version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdresume help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return false
	}
	return true
}
