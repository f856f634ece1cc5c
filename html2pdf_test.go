package mdresume

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakePDFRenderer implements pdfRenderer without a browser.
type fakePDFRenderer struct {
	result  []byte
	err     error
	content string // file content seen during RenderFromFile
	path    string
	closed  bool
}

func (f *fakePDFRenderer) RenderFromFile(_ context.Context, filePath string) ([]byte, error) {
	f.path = filePath
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	f.content = string(data)
	return f.result, f.err
}

func (f *fakePDFRenderer) Close() error {
	f.closed = true
	return nil
}

func TestPDFPrinter_Print(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		fake    *fakePDFRenderer
		wantErr error
	}{
		{
			name: "returns PDF bytes",
			fake: &fakePDFRenderer{result: []byte("%PDF-1.7")},
		},
		{
			name:    "renderer error propagates",
			fake:    &fakePDFRenderer{err: ErrPageLoad},
			wantErr: ErrPageLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &PDFPrinter{renderer: tt.fake, logger: zerolog.Nop()}
			page := `<html><body><div id="vue-smart-pages-preview">Ada</div></body></html>`

			got, err := p.Print(context.Background(), page)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Print() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Print() error = %v", err)
				}
				if string(got) != "%PDF-1.7" {
					t.Errorf("Print() = %q", got)
				}
			}

			if tt.fake.content != page {
				t.Errorf("renderer saw %q, want the page", tt.fake.content)
			}
			if !strings.HasSuffix(tt.fake.path, ".html") {
				t.Errorf("temp file %q is not .html", tt.fake.path)
			}
			if _, err := os.Stat(tt.fake.path); !os.IsNotExist(err) {
				t.Errorf("temp file %q not removed after Print", tt.fake.path)
			}
		})
	}
}

func TestPDFPrinter_Close(t *testing.T) {
	t.Parallel()

	fake := &fakePDFRenderer{}
	p := &PDFPrinter{renderer: fake, logger: zerolog.Nop()}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !fake.closed {
		t.Error("Close() did not close the renderer")
	}
}

func TestNewPDFPrinter_DefaultTimeout(t *testing.T) {
	t.Parallel()

	p := NewPDFPrinter(0)
	r, ok := p.renderer.(*rodRenderer)
	if !ok {
		t.Fatalf("renderer is %T, want *rodRenderer", p.renderer)
	}
	if r.timeout != DefaultPDFTimeout {
		t.Errorf("timeout = %v, want %v", r.timeout, DefaultPDFTimeout)
	}

	if r := NewPDFPrinter(5 * time.Second).renderer.(*rodRenderer); r.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", r.timeout)
	}

	// Closing a printer that never launched a browser is a no-op.
	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestRodRenderer_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Returns before launching a browser.
	_, err := newRodRenderer(time.Second).RenderFromFile(ctx, "/nonexistent.html")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RenderFromFile() error = %v, want context.Canceled", err)
	}
}

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	opts := buildPDFOptions()
	if !opts.PreferCSSPageSize {
		t.Error("PreferCSSPageSize = false, want true")
	}
	if !opts.PrintBackground {
		t.Error("PrintBackground = false, want true")
	}
	if opts.MarginTop == nil || *opts.MarginTop != pdfMarginInches {
		t.Errorf("MarginTop = %v, want %v", opts.MarginTop, pdfMarginInches)
	}
	if opts.PaperWidth != nil || opts.PaperHeight != nil {
		t.Error("paper dimensions set; the page CSS should choose them")
	}
}
