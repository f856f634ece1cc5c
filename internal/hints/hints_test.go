package hints

import (
	"strings"
	"testing"
)

func envOf(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestForBrowserConnect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		env         map[string]string
		inContainer bool
		want        []string
		notWant     []string
	}{
		{
			name: "in CI",
			env:  map[string]string{"CI": "true"},
			want: []string{"hint:", "ROD_NO_SANDBOX", "ROD_BROWSER_BIN"},
		},
		{
			name:        "in Docker",
			inContainer: true,
			want:        []string{"ROD_NO_SANDBOX"},
		},
		{
			name:        "sandbox already disabled",
			env:         map[string]string{"ROD_NO_SANDBOX": "1"},
			inContainer: true,
			notWant:     []string{"ROD_NO_SANDBOX"},
		},
		{
			name:    "browser bin already set",
			env:     map[string]string{"ROD_BROWSER_BIN": "/usr/bin/chrome"},
			notWant: []string{"ROD_BROWSER_BIN", "ROD_NO_SANDBOX"},
		},
		{
			name:    "local run",
			env:     map[string]string{"GITHUB_ACTIONS": ""},
			want:    []string{"ROD_BROWSER_BIN"},
			notWant: []string{"ROD_NO_SANDBOX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForBrowserConnect(envOf(tt.env), tt.inContainer)
			for _, w := range tt.want {
				if !strings.Contains(hint, w) {
					t.Errorf("hint %q should contain %q", hint, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(hint, w) {
					t.Errorf("hint %q should not contain %q", hint, w)
				}
			}
		})
	}
}

func TestForBrowserConnect_NothingToSuggest(t *testing.T) {
	t.Parallel()

	hint := ForBrowserConnect(envOf(map[string]string{"ROD_BROWSER_BIN": "/opt/chrome"}), false)
	if hint != "" {
		t.Errorf("ForBrowserConnect() = %q, want empty", hint)
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userPath string
		want     string
	}{
		{"with user path", "/home/u/.config/go-mdresume/work.yaml",
			"\n  hint: run 'mdresume init' to write a starter config or create /home/u/.config/go-mdresume/work.yaml"},
		{"without user path", "", "\n  hint: run 'mdresume init' to write a starter config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ForConfigNotFound(tt.userPath); got != tt.want {
				t.Errorf("ForConfigNotFound(%q) = %q, want %q", tt.userPath, got, tt.want)
			}
		})
	}
}

func TestForStyleNotFound(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}

	got := ForStyleNotFound([]string{"compact", "default"})
	if !strings.Contains(got, "available backbones: compact, default") {
		t.Errorf("ForStyleNotFound() = %q, should list names", got)
	}
}

func TestStaticHints(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"timeout":          ForTimeout(),
		"output directory": ForOutputDirectory(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s hint = %q, want hint prefix", name, hint)
		}
	}
}
