package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	mdresume "github.com/bochaoli95/go-mdresume"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake printer and environment
// ---------------------------------------------------------------------------

// fakePrinter records printed pages and returns canned bytes.
type fakePrinter struct {
	mu     sync.Mutex
	pages  []string
	pdf    []byte
	err    error
	closed bool
}

func (p *fakePrinter) Print(_ context.Context, page string) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pages = append(p.pages, page)
	if p.err != nil {
		return nil, p.err
	}
	return p.pdf, nil
}

func (p *fakePrinter) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

// testEnv bundles an Environment with its captured output.
type testEnv struct {
	env     *Environment
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	printer *fakePrinter
}

// newTestEnv returns an environment with buffered output, the given env
// vars and a fake PDF printer.
func newTestEnv(t *testing.T, vars map[string]string) *testEnv {
	t.Helper()

	loader, err := mdresume.NewAssetLoader("")
	if err != nil {
		t.Fatalf("NewAssetLoader: %v", err)
	}

	te := &testEnv{
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		printer: &fakePrinter{pdf: []byte("%PDF-1.4 fake")},
	}

	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}

	te.env = &Environment{
		Now:         func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout:      te.stdout,
		Stderr:      te.stderr,
		Getenv:      func(key string) string { return vars[key] },
		Environ:     func() []string { return environ },
		AssetLoader: loader,
		NewPrinter: func(time.Duration, zerolog.Logger) Printer {
			return te.printer
		},
	}
	return te
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

const sampleResume = `---
name: Jane Doe
header:
  - text: "+1 555 0100"
  - text: jane@example.com
    link: mailto:jane@example.com
---

# Jane Doe

## Experience

**Acme Corp**
: Staff engineer [~p1]

[~p1]: Led the platform team.
`
