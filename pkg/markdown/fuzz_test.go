package markdown

import (
	"strings"
	"testing"
)

func FuzzToHTML(f *testing.F) {
	seeds := []string{
		"# Title\n\nSome _italic_ text",
		"```go\nx\n```",
		"> a\n> b",
		"- a\n- b",
		"1. a\n2. b",
		"![a](b) [c](d) **e** `f`",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, doc string) {
		for _, mode := range []ListMode{ListJoined, ListPerItem} {
			out, err := NewConverter(Options{ListMode: mode}).ToHTML(doc)
			if err != nil {
				t.Fatalf("ToHTML(%q): %v", doc, err)
			}
			if !strings.HasPrefix(out, "<div>") || !strings.HasSuffix(out, "</div>") {
				t.Fatalf("ToHTML(%q) = %q: missing root", doc, out)
			}
		}
	})
}
