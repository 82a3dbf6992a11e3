// Package site generates HTML pages from markdown documents and builds a
// whole site from a content tree.
package site

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/unicode/norm"

	"github.com/yaklabco/mdsite/pkg/markdown"
	"github.com/yaklabco/mdsite/pkg/render"
)

// Template placeholders.
const (
	PlaceholderTitle   = "{{ Title }}"
	PlaceholderContent = "{{ Content }}"
)

// PageOptions controls page generation.
type PageOptions struct {
	// Engine renders the document content. Nil selects the builtin engine.
	Engine render.Engine

	// BasePath prefixes root-relative href and src URLs. Empty or "/"
	// leaves them unchanged.
	BasePath string

	// NormalizeUnicode applies NFC normalization to the document first.
	NormalizeUnicode bool
}

// Page is a generated page.
type Page struct {
	// Title is the text of the document's level-1 heading.
	Title string

	// Content is the rendered document without the template.
	Content string

	// HTML is the complete page.
	HTML string

	// Links are the href values of anchors in the content, before base path
	// rewriting.
	Links []string

	// Images are the src values of images in the content, before base path
	// rewriting.
	Images []string
}

// GeneratePage renders doc and substitutes the result into tmpl.
func GeneratePage(ctx context.Context, doc, tmpl string, opts PageOptions) (*Page, error) {
	if opts.NormalizeUnicode {
		doc = norm.NFC.String(doc)
	}

	title, err := markdown.ExtractTitle(doc)
	if err != nil {
		return nil, err
	}

	engine := opts.Engine
	if engine == nil {
		engine = render.NewBuiltin(markdown.Options{})
	}

	content, err := engine.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("render with %s: %w", engine.Name(), err)
	}

	links, images, err := collectURLs(content)
	if err != nil {
		return nil, err
	}

	html := strings.ReplaceAll(tmpl, PlaceholderTitle, title)
	html = strings.ReplaceAll(html, PlaceholderContent, content)

	return &Page{
		Title:   title,
		Content: content,
		HTML:    RewriteBasePath(html, opts.BasePath),
		Links:   links,
		Images:  images,
	}, nil
}

// RewriteBasePath points root-relative href and src attributes at base.
func RewriteBasePath(html, base string) string {
	base = NormalizeBasePath(base)
	if base == "/" {
		return html
	}

	// Protocol-relative URLs are matched first and kept.
	return strings.NewReplacer(
		`href="//`, `href="//`,
		`src="//`, `src="//`,
		`href="/`, `href="`+base,
		`src="/`, `src="`+base,
	).Replace(html)
}

// NormalizeBasePath returns base with exactly one leading and trailing slash.
func NormalizeBasePath(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return "/"
	}
	return "/" + base + "/"
}

// collectURLs lists anchor and image targets in rendered content.
func collectURLs(content string) ([]string, []string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, nil, fmt.Errorf("parse rendered content: %w", err)
	}

	var links, images []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		links = append(links, href)
	})
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		images = append(images, src)
	})

	return links, images, nil
}
