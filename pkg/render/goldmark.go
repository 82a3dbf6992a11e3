package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/yaklabco/mdsite/pkg/markdown"
)

// Flavor identifies the Markdown flavor the goldmark engine accepts.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Goldmark renders with github.com/yuin/goldmark. Output is wrapped in the
// same root element the builtin engine emits so templates work with both.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark creates a goldmark engine for the given flavor.
// Invalid flavors default to "commonmark".
func NewGoldmark(flavor string) *Goldmark {
	return &Goldmark{md: newGoldmarkInstance(flavorOrDefault(flavor))}
}

// Name implements Engine.
func (g *Goldmark) Name() string {
	return EngineGoldmark
}

// Render implements Engine.
func (g *Goldmark) Render(ctx context.Context, doc string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("render cancelled: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("<" + markdown.RootTag + ">")
	if err := g.md.Convert([]byte(doc), &buf); err != nil {
		return "", fmt.Errorf("goldmark convert: %w", err)
	}
	buf.WriteString("</" + markdown.RootTag + ">")

	return buf.String(), nil
}

func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
// Raw HTML passes through, matching the builtin engine which never escapes.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithRendererOptions(html.WithUnsafe()),
	}

	switch flavor {
	case FlavorGFM:
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	case FlavorCommonMark:
		// No extensions for pure CommonMark.
	}

	return goldmark.New(opts...)
}
