package markdown

import (
	"strconv"
	"strings"

	"github.com/yaklabco/mdsite/pkg/block"
	"github.com/yaklabco/mdsite/pkg/htmlnode"
	"github.com/yaklabco/mdsite/pkg/inline"
	"github.com/yaklabco/mdsite/pkg/langdetect"
)

// textToChildren tokenizes text into leaf nodes.
func textToChildren(text string) ([]htmlnode.Node, error) {
	return inline.ToNodes(inline.Tokenize(text))
}

func compileHeading(text string) (*htmlnode.Parent, error) {
	level := block.HeadingLevel(text)
	children, err := textToChildren(text[level+1:])
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("h"+strconv.Itoa(level), children...), nil
}

// compileCode emits the fenced content verbatim as <pre><code>.
// With InfoStringClass the info string on the opening fence, if any, is
// removed from the content and becomes the language class.
func (c *Converter) compileCode(text string) *htmlnode.Parent {
	body := strings.TrimSuffix(strings.TrimPrefix(text, block.CodeFence), block.CodeFence)

	info := ""
	if c.opts.InfoStringClass {
		if newline := strings.IndexByte(body, '\n'); newline >= 0 {
			info = strings.TrimSpace(body[:newline])
			body = body[newline+1:]
		}
		body = strings.TrimLeft(body, "\n")
	}

	lang := ""
	switch {
	case info != "":
		lang = langdetect.Normalize(info)
	case c.opts.DetectCodeLanguage:
		lang, _ = langdetect.Detect(strings.TrimLeft(body, "\n"))
	}

	var attrs *htmlnode.Attrs
	if lang != "" {
		attrs = htmlnode.NewAttrs("class", "language-"+lang)
	}

	return htmlnode.NewParent("pre", htmlnode.NewLeaf("code", body, attrs))
}

func compileQuote(text string) (*htmlnode.Parent, error) {
	lines := strings.Split(text, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		part := strings.TrimSpace(strings.TrimPrefix(line, block.QuoteMarker))
		if part != "" {
			parts = append(parts, part)
		}
	}

	children, err := textToChildren(strings.Join(parts, " "))
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("blockquote", children...), nil
}

func stripBullet(line string) string {
	return strings.TrimPrefix(line, block.BulletMarker)
}

func stripNumber(line string) string {
	if _, rest, ok := block.OrderedListNumber(line); ok {
		return rest
	}
	return line
}

// compileList builds a <ul> or <ol>. Each line is one item with its marker
// removed by strip.
func (c *Converter) compileList(text, tag string, strip func(string) string) (*htmlnode.Parent, error) {
	lines := strings.Split(text, "\n")

	if c.opts.ListMode == ListPerItem {
		list := htmlnode.NewParent(tag)
		for _, line := range lines {
			children, err := textToChildren(strip(line))
			if err != nil {
				return nil, err
			}
			list.Append(htmlnode.NewParent("li", children...))
		}
		return list, nil
	}

	var shells strings.Builder
	for _, line := range lines {
		shells.WriteString("<li>")
		shells.WriteString(strip(line))
		shells.WriteString("</li>")
	}

	children, err := textToChildren(shells.String())
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children...), nil
}

func compileParagraph(text string) (*htmlnode.Parent, error) {
	children, err := textToChildren(strings.ReplaceAll(text, "\n", " "))
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("p", children...), nil
}
