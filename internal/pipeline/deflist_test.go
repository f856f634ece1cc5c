package pipeline

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestResolveDefinitionLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no definition list is identity",
			input:    "<p>Hello</p>\n",
			expected: "<p>Hello</p>\n",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "single term unchanged",
			input:    "<dl>\n<dt>Go</dt>\n<dd>Language</dd>\n</dl>\n",
			expected: "<dl>\n<dt>Go</dt>\n<dd>Language</dd>\n</dl>\n",
		},
		{
			name:     "two terms split",
			input:    "<dl>\n<dt>A</dt>\n<dd>a</dd>\n<dt>B</dt>\n<dd>b</dd>\n</dl>\n",
			expected: "<dl>\n<dt>A</dt>\n<dd>a</dd>\n</dl>\n<dl>\n<dt>B</dt>\n<dd>b</dd>\n</dl>\n",
		},
		{
			name:     "multiple descriptions stay with their term",
			input:    "<dl>\n<dt>A</dt>\n<dd>a1</dd>\n<dd>a2</dd>\n<dt>B</dt>\n<dd>b</dd>\n</dl>\n",
			expected: "<dl>\n<dt>A</dt>\n<dd>a1</dd>\n<dd>a2</dd>\n</dl>\n<dl>\n<dt>B</dt>\n<dd>b</dd>\n</dl>\n",
		},
		{
			name:     "identical spans are all rewritten",
			input:    "<dl>\n<dt>A</dt>\n<dd>a</dd>\n<dt>B</dt>\n<dd>b</dd>\n</dl>\n<p>x</p>\n<dl>\n<dt>A</dt>\n<dd>a</dd>\n<dt>B</dt>\n<dd>b</dd>\n</dl>\n",
			expected: "<dl>\n<dt>A</dt>\n<dd>a</dd>\n</dl>\n<dl>\n<dt>B</dt>\n<dd>b</dd>\n</dl>\n<p>x</p>\n<dl>\n<dt>A</dt>\n<dd>a</dd>\n</dl>\n<dl>\n<dt>B</dt>\n<dd>b</dd>\n</dl>\n",
		},
		{
			name:     "boundary outside a list is untouched",
			input:    "<p></dd>\n<dt></p>",
			expected: "<p></dd>\n<dt></p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveDefinitionLists(tt.input)
			if got != tt.expected {
				t.Errorf("ResolveDefinitionLists(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolveDefinitionLists_OneTermPerList(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 12} {
		var buf strings.Builder
		buf.WriteString("<dl>\n")
		for i := 0; i < n; i++ {
			buf.WriteString("<dt>term</dt>\n<dd>description</dd>\n")
		}
		buf.WriteString("</dl>\n")

		lists := definitionLists(t, ResolveDefinitionLists(buf.String()))
		if len(lists) != n {
			t.Fatalf("n=%d: got %d <dl> elements, want %d", n, len(lists), n)
		}
		for i, terms := range lists {
			if terms != 1 {
				t.Errorf("n=%d: <dl> #%d has %d <dt>, want 1", n, i, terms)
			}
		}
	}
}

func TestResolveDefinitionLists_Goldmark(t *testing.T) {
	t.Parallel()

	markdown := "Go\n: A language\n\nRust\n: Another language\n\nZig\n: Yet another\n"

	out, err := NewGoldmarkConverter().ToHTML(context.Background(), markdown)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	lists := definitionLists(t, ResolveDefinitionLists(out))
	if len(lists) != 3 {
		t.Fatalf("got %d <dl> elements, want 3 in:\n%s", len(lists), out)
	}
	for i, terms := range lists {
		if terms != 1 {
			t.Errorf("<dl> #%d has %d <dt>, want 1", i, terms)
		}
	}
}

// definitionLists parses the fragment and returns the <dt> count of every <dl>.
func definitionLists(t *testing.T, fragment string) []int {
	t.Helper()

	nodes, err := html.ParseFragment(strings.NewReader(fragment), &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		t.Fatalf("parsing HTML: %v", err)
	}

	var counts []int
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Dl {
			terms := 0
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && c.DataAtom == atom.Dt {
					terms++
				}
			}
			counts = append(counts, terms)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return counts
}
