// Package hints provides actionable error hints for common CLI failures.
// Hints are formatted as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/bochaoli95/go-mdresume/internal/fileutil"
)

// InContainer detects a Docker container by the /.dockerenv marker file.
func InContainer() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForBrowserConnect returns hints for headless Chrome launch failures.
// getenv is usually os.Getenv.
func ForBrowserConnect(getenv func(string) string, inContainer bool) string {
	var hints []string

	inCI := getenv("CI") != "" ||
		getenv("GITHUB_ACTIONS") != "" ||
		getenv("GITLAB_CI") != "" ||
		getenv("JENKINS_URL") != ""

	if (inCI || inContainer) && getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if getenv("ROD_BROWSER_BIN") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return formatHints(hints)
}

// ForTimeout suggests raising the print timeout.
func ForTimeout() string {
	return format("raise pdf.timeout in the config file")
}

// ForConfigNotFound suggests how to create a config file. userPath is where
// a named config would be looked up in the user config directory.
func ForConfigNotFound(userPath string) string {
	hint := "run 'mdresume init' to write a starter config"
	if userPath != "" {
		hint += " or create " + userPath
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check the output directory exists and is writable")
}

// ForStyleNotFound lists the available backbone stylesheets.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available backbones: " + strings.Join(available, ", ") + "; or pass a .css path")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
