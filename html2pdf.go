package mdresume

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"

	"github.com/bochaoli95/go-mdresume/internal/fileutil"
	"github.com/bochaoli95/go-mdresume/internal/process"
)

// DefaultPDFTimeout bounds page loading when the context has no deadline.
const DefaultPDFTimeout = 30 * time.Second

// Margins in inches. The page size itself comes from the
// "@media print { @page { size } }" rule of the preview instance.
const pdfMarginInches = 0.4

// pdfRenderer renders a local HTML file to PDF bytes.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ pdfRenderer = (*rodRenderer)(nil)

// rodRenderer drives headless Chrome through go-rod. Rod downloads a
// managed Chromium on first use when none is installed.
type rodRenderer struct {
	mu       sync.Mutex
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
// Callers hold r.mu.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Containers ship their own Chrome.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher = l
	r.browser = browser
	return nil
}

// Close shuts the browser down and kills any leftover child processes.
func (r *rodRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		process.KillProcessGroup(r.launcher.PID())
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// RenderFromFile opens filePath in a new tab and prints it.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Context(ctx).Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPDFOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdf, nil
}

// buildPDFOptions lets the page's CSS choose the paper size.
func buildPDFOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PreferCSSPageSize: true,
		PrintBackground:   true,
		MarginTop:         floatPtr(pdfMarginInches),
		MarginBottom:      floatPtr(pdfMarginInches),
		MarginLeft:        floatPtr(pdfMarginInches),
		MarginRight:       floatPtr(pdfMarginInches),
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// PDFPrinter prints exported résumé pages to PDF with headless Chrome.
// The browser starts on first Print and stays up until Close.
// A PDFPrinter is safe for concurrent use; prints are serialized.
type PDFPrinter struct {
	renderer pdfRenderer
	logger   zerolog.Logger
}

// PDFOption configures a PDFPrinter.
type PDFOption func(*PDFPrinter)

// WithPDFLogger sets the printer's logger.
func WithPDFLogger(logger zerolog.Logger) PDFOption {
	return func(p *PDFPrinter) {
		p.logger = logger
	}
}

// NewPDFPrinter creates a printer. A non-positive timeout uses DefaultPDFTimeout.
func NewPDFPrinter(timeout time.Duration, opts ...PDFOption) *PDFPrinter {
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	p := &PDFPrinter{
		renderer: newRodRenderer(timeout),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print renders a standalone HTML page (see ExportPage) to PDF bytes.
func (p *PDFPrinter) Print(ctx context.Context, page string) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(page, "html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	defer cleanup()

	start := time.Now()
	pdf, err := p.renderer.RenderFromFile(ctx, tmpPath)
	if err != nil {
		return nil, err
	}

	p.logger.Debug().
		Int("bytes", len(pdf)).
		Dur("elapsed", time.Since(start)).
		Msg("printed PDF")
	return pdf, nil
}

// Close releases the browser.
func (p *PDFPrinter) Close() error {
	return p.renderer.Close()
}
