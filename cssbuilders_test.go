package mdresume

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestBuildStyleCSS
// ---------------------------------------------------------------------------

func TestBuildStyleCSS_Defaults(t *testing.T) {
	t.Parallel()

	root := "#vue-smart-pages-preview"
	want := root + " { font-family: Arial, Noto Sans SC }" +
		root + " { font-size: 15px }" +
		root + " :not(.resume-header-item) > a { color: #377bb5 }" +
		root + " h1, " + root + " h2, " + root + " h3 { color: #377bb5 }" +
		root + " h1, " + root + " h2 { border-bottom-color: #377bb5 }" +
		root + " h2 { margin-top: 5px }" +
		root + " p, " + root + " li { line-height: 1.30 }" +
		root + " h2, " + root + " h3 { line-height: 1.50 }" +
		root + " dl { line-height: 1.35 }" +
		"@media print { @page { size: A4; } }"

	got := BuildStyleCSS(DefaultStyleParameters(), InstancePreview)
	if got != want {
		t.Errorf("BuildStyleCSS(defaults, preview) =\n%s\nwant\n%s", got, want)
	}
}

func TestBuildStyleCSS_PaperOnlyForPreview(t *testing.T) {
	t.Parallel()

	p := DefaultStyleParameters()

	editor := BuildStyleCSS(p, InstanceEditor)
	if strings.Contains(editor, "@page") {
		t.Errorf("editor CSS contains @page rule:\n%s", editor)
	}
	if strings.Contains(editor, "vue-smart-pages-preview") {
		t.Errorf("editor CSS references the preview root:\n%s", editor)
	}
	if !strings.HasPrefix(editor, "#vue-smart-pages-editor { font-family:") {
		t.Errorf("editor CSS = %q, want editor root first", editor)
	}

	preview := BuildStyleCSS(p, InstancePreview)
	if !strings.HasSuffix(preview, "@media print { @page { size: A4; } }") {
		t.Errorf("preview CSS missing paper rule:\n%s", preview)
	}
}

func TestBuildStyleCSS_Deterministic(t *testing.T) {
	t.Parallel()

	p := DefaultStyleParameters()
	if a, b := BuildStyleCSS(p, "x"), BuildStyleCSS(p, "x"); a != b {
		t.Errorf("BuildStyleCSS is not deterministic:\n%s\n%s", a, b)
	}
}

// ---------------------------------------------------------------------------
// Individual builders
// ---------------------------------------------------------------------------

func TestBuildLineHeightCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		height float64
		want   []string
	}{
		{1, []string{"line-height: 1.00 }", "line-height: 1.15 }", "line-height: 1.04 }"}},
		{1.5, []string{"line-height: 1.50 }", "line-height: 1.73 }", "line-height: 1.56 }"}},
		{2, []string{"line-height: 2.00 }", "line-height: 2.31 }", "line-height: 2.08 }"}},
	}

	for _, tt := range tests {
		p := &StyleParameters{LineHeight: tt.height}
		got := buildLineHeightCSS(p, "r")
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("buildLineHeightCSS(%v) = %q, missing %q", tt.height, got, w)
			}
		}
	}
}

func TestBuildFontFamilyCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		en   Font
		cjk  Font
		want string
	}{
		{
			name: "display names",
			en:   Font{Name: "Arial"},
			cjk:  Font{Name: "Noto Sans SC"},
			want: "#r { font-family: Arial, Noto Sans SC }",
		},
		{
			name: "explicit family preferred",
			en:   Font{Name: "Georgia", FontFamily: "'Georgia', serif"},
			cjk:  Font{Name: "思源宋体", FontFamily: "'Source Han Serif SC'"},
			want: "#r { font-family: 'Georgia', serif, 'Source Han Serif SC' }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildFontFamilyCSS(&StyleParameters{FontEN: tt.en, FontCJK: tt.cjk}, "r")
			if got != tt.want {
				t.Errorf("buildFontFamilyCSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNumberFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v      float64
		number string
		fixed2 string
	}{
		{15, "15", "15.00"},
		{5.5, "5.5", "5.50"},
		{0, "0", "0.00"},
		{1.005, "1.005", "1.00"},
	}

	for _, tt := range tests {
		if got := number(tt.v); got != tt.number {
			t.Errorf("number(%v) = %q, want %q", tt.v, got, tt.number)
		}
		if got := fixed2(tt.v); got != tt.fixed2 {
			t.Errorf("fixed2(%v) = %q, want %q", tt.v, got, tt.fixed2)
		}
	}
}

// ---------------------------------------------------------------------------
// TestScopeBackboneCSS
// ---------------------------------------------------------------------------

func TestScopeBackboneCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		css      string
		instance string
		want     string
	}{
		{
			name:     "editor rescoped",
			css:      "#vue-smart-pages-preview { color: red }",
			instance: "editor",
			want:     "#vue-smart-pages-editor { color: red }",
		},
		{
			name:     "preview unchanged",
			css:      "#vue-smart-pages-preview { color: red }",
			instance: "preview",
			want:     "#vue-smart-pages-preview { color: red }",
		},
		{
			name:     "every occurrence replaced",
			css:      "#vue-smart-pages-preview h1, #vue-smart-pages-preview h2 { margin: 0 }",
			instance: "thumb",
			want:     "#vue-smart-pages-thumb h1, #vue-smart-pages-thumb h2 { margin: 0 }",
		},
		{
			name:     "no selector",
			css:      "body { margin: 0 }",
			instance: "editor",
			want:     "body { margin: 0 }",
		},
		{
			name:     "empty",
			css:      "",
			instance: "editor",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ScopeBackboneCSS(tt.css, tt.instance); got != tt.want {
				t.Errorf("ScopeBackboneCSS(%q, %q) = %q, want %q", tt.css, tt.instance, got, tt.want)
			}
		})
	}
}
