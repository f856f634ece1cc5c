package mdresume

import (
	"context"
	"fmt"
	"html"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bochaoli95/go-mdresume/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.ResumePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// DefaultMaxDocumentSize caps how much Render reads from its reader.
const DefaultMaxDocumentSize = 4 << 20

// HTMLConverter turns a Markdown body into an HTML fragment.
// It must pass raw inline HTML through and support definition lists.
type HTMLConverter = pipeline.HTMLConverter

// RenderResult holds the rendered HTML and what the passes extracted.
type RenderResult struct {
	HTML      string
	Document  Document
	Crossrefs []Crossref
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for per-render debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithHTMLConverter replaces the goldmark converter.
func WithHTMLConverter(c HTMLConverter) Option {
	return func(r *Renderer) {
		r.htmlConverter = c
	}
}

// WithMaxDocumentSize sets the byte limit for Render.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxDocumentSize(n int64) Option {
	if n <= 0 {
		panic("mdresume: WithMaxDocumentSize must be positive")
	}
	return func(r *Renderer) {
		r.maxSize = n
	}
}

// Renderer turns résumé documents into presentation HTML.
// A Renderer is safe for concurrent use.
type Renderer struct {
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	logger        zerolog.Logger
	maxSize       int64
}

// NewRenderer creates a Renderer backed by goldmark.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		preprocessor:  &pipeline.ResumePreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		logger:        zerolog.Nop(),
		maxSize:       DefaultMaxDocumentSize,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Render reads a document from src and renders it.
// A nil reader is a caller error and returns ErrNilDocument.
func (r *Renderer) Render(ctx context.Context, src io.Reader) (*RenderResult, error) {
	if src == nil {
		return nil, ErrNilDocument
	}

	data, err := io.ReadAll(io.LimitReader(src, r.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if int64(len(data)) > r.maxSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrDocumentTooLarge, r.maxSize)
	}

	return r.RenderString(ctx, string(data))
}

// RenderString renders a raw document: front matter split, Markdown
// conversion, then the HTML passes in order. Malformed content never fails;
// errors come only from cancellation or the converter.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) RenderString(ctx context.Context, raw string) (result *RenderResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	doc := pipeline.SplitFrontMatter(pipeline.NormalizeLineEndings(raw))

	body := r.preprocessor.PreprocessMarkdown(ctx, doc.Body)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err := r.htmlConverter.ToHTML(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent, refs := pipeline.Postprocess(htmlContent, doc.FrontMatter)

	r.logger.Debug().
		Int("attributes", len(doc.FrontMatter.Attributes)).
		Int("headerItems", len(doc.FrontMatter.Header)).
		Int("crossrefs", len(refs)).
		Int("bytes", len(htmlContent)).
		Msg("rendered resume")

	return &RenderResult{
		HTML:      htmlContent,
		Document:  doc,
		Crossrefs: refs,
	}, nil
}

var defaultRenderer = sync.OnceValue(func() *Renderer { return NewRenderer() })

// RenderResume renders raw with the default renderer. It never fails: if
// conversion breaks, the body is returned escaped in a <pre> under the header.
func RenderResume(raw string) string {
	return defaultRenderer().renderOrFallback(raw)
}

func (r *Renderer) renderOrFallback(raw string) string {
	res, err := r.RenderString(context.Background(), raw)
	if err == nil {
		return res.HTML
	}

	r.logger.Warn().Err(err).Msg("rendering failed, falling back to plain text")

	doc := pipeline.SplitFrontMatter(pipeline.NormalizeLineEndings(raw))
	return pipeline.ResolveHeader("<pre>"+html.EscapeString(doc.Body)+"</pre>", doc.FrontMatter)
}
