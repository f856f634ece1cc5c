package mdresume

import (
	"html"
	"strings"
	"sync"

	"github.com/bochaoli95/go-mdresume/internal/pipeline"
)

// StyleSurface is the place generated CSS is installed, keyed by element id.
// Implementations may be a page being assembled, a live browser DOM, or a
// test fake.
type StyleSurface interface {
	// Remove deletes the style block with the given id and reports whether
	// one existed.
	Remove(id string) bool

	// Append adds a style block at the end of the surface.
	Append(id, css string)
}

// InjectStyle replaces the style block for id with css.
// Any existing block is removed first, so repeated injection never
// accumulates. Blank css leaves the id cleared.
func InjectStyle(surface StyleSurface, id, css string) {
	surface.Remove(id)

	if strings.TrimSpace(css) == "" {
		return
	}
	surface.Append(id, css)
}

// styleBlock is one installed style element.
type styleBlock struct {
	id  string
	css string
}

// StyleSheet is an in-memory StyleSurface that keeps blocks in insertion
// order. It is safe for concurrent use.
type StyleSheet struct {
	mu     sync.RWMutex
	blocks []styleBlock
}

// NewStyleSheet creates an empty StyleSheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{}
}

// Remove deletes the block with the given id.
func (s *StyleSheet) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.blocks {
		if b.id == id {
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			return true
		}
	}
	return false
}

// Append adds a block at the end. Callers go through InjectStyle so ids
// stay unique.
func (s *StyleSheet) Append(id, css string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blocks = append(s.blocks, styleBlock{id: id, css: css})
}

// Get returns the CSS installed under id.
func (s *StyleSheet) Get(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.blocks {
		if b.id == id {
			return b.css, true
		}
	}
	return "", false
}

// IDs returns the installed ids in document order.
func (s *StyleSheet) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.blocks))
	for i, b := range s.blocks {
		ids[i] = b.id
	}
	return ids
}

// CSS returns all installed CSS concatenated in document order.
func (s *StyleSheet) CSS() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var buf strings.Builder
	for i, b := range s.blocks {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(b.css)
	}
	return buf.String()
}

// HTML renders each block as a <style id="..."> element.
func (s *StyleSheet) HTML() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var buf strings.Builder
	for _, b := range s.blocks {
		buf.WriteString(`<style id="`)
		buf.WriteString(html.EscapeString(b.id))
		buf.WriteString(`">`)
		buf.WriteString(pipeline.SanitizeCSS(b.css))
		buf.WriteString("</style>\n")
	}
	return buf.String()
}

// Compile-time interface check.
var _ StyleSurface = (*StyleSheet)(nil)
