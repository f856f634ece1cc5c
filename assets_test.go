package mdresume

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestNewAssetLoader(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader(\"\") error = %v", err)
	}

	css, err := loader.LoadStyle(DefaultBackbone)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", DefaultBackbone, err)
	}
	if !strings.Contains(css, PreviewSelector) {
		t.Error("default backbone is not written against the preview root")
	}

	if _, err := loader.LoadTemplate(DefaultPageTemplate); err != nil {
		t.Errorf("LoadTemplate(%q) error = %v", DefaultPageTemplate, err)
	}

	_, err = NewAssetLoader(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrInvalidAssetPath) {
		t.Errorf("NewAssetLoader(missing) error = %v, want ErrInvalidAssetPath", err)
	}
}

func TestAssetLoader_PublicErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "styles", "mine.css"), []byte("#vue-smart-pages-preview{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader, err := NewAssetLoader(dir)
	if err != nil {
		t.Fatalf("NewAssetLoader() error = %v", err)
	}

	if got, err := loader.LoadStyle("mine"); err != nil || got != "#vue-smart-pages-preview{}" {
		t.Errorf("LoadStyle(mine) = %q, %v", got, err)
	}

	tests := []struct {
		name    string
		load    func() error
		wantErr error
	}{
		{
			name:    "missing style",
			load:    func() error { _, err := loader.LoadStyle("nope"); return err },
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "invalid style name",
			load:    func() error { _, err := loader.LoadStyle("../x"); return err },
			wantErr: ErrStyleNotFound,
		},
		{
			name:    "missing template",
			load:    func() error { _, err := loader.LoadTemplate("nope"); return err },
			wantErr: ErrTemplateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.load()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if err != nil && err.Error() == tt.wantErr.Error() {
				t.Errorf("error %q lost its detail", err)
			}
		})
	}
}

func TestBuiltinBackbones(t *testing.T) {
	t.Parallel()

	got := BuiltinBackbones()
	if !slices.Contains(got, DefaultBackbone) {
		t.Errorf("BuiltinBackbones() = %v, missing %q", got, DefaultBackbone)
	}
}
