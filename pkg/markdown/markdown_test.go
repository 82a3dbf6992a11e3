package markdown_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdsite/pkg/htmlnode"
	"github.com/yaklabco/mdsite/pkg/markdown"
)

func TestToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{
			name:     "title and paragraph",
			doc:      "# Title\n\nSome _italic_ text",
			expected: "<div><h1>Title</h1><p>Some <i>italic</i> text</p></div>",
		},
		{
			name:     "empty document",
			doc:      "",
			expected: "<div></div>",
		},
		{
			name:     "whitespace only",
			doc:      "\n\n   \n\n",
			expected: "<div></div>",
		},
		{
			name:     "heading levels",
			doc:      "## Two\n\n###### Six",
			expected: "<div><h2>Two</h2><h6>Six</h6></div>",
		},
		{
			name:     "seven hashes is a paragraph",
			doc:      "####### Seven",
			expected: "<div><p>####### Seven</p></div>",
		},
		{
			name:     "heading with inline markup",
			doc:      "# A **bold** title",
			expected: "<div><h1>A <b>bold</b> title</h1></div>",
		},
		{
			name:     "paragraph newlines become spaces",
			doc:      "line one\nline two",
			expected: "<div><p>line one line two</p></div>",
		},
		{
			name:     "code block is verbatim",
			doc:      "```\nfmt.Println(\"**not bold**\")\n```",
			expected: "<div><pre><code>\nfmt.Println(\"**not bold**\")\n</code></pre></div>",
		},
		{
			name:     "code block keeps info string",
			doc:      "```go\nx := 1\n```",
			expected: "<div><pre><code>go\nx := 1\n</code></pre></div>",
		},
		{
			name:     "code block on one line",
			doc:      "```code```",
			expected: "<div><pre><code>code</code></pre></div>",
		},
		{
			name:     "quote",
			doc:      "> hello\n> **world**",
			expected: "<div><blockquote>hello <b>world</b></blockquote></div>",
		},
		{
			name:     "unordered list",
			doc:      "- a\n- _b_",
			expected: "<div><ul><li>a</li><li><i>b</i></li></ul></div>",
		},
		{
			name:     "ordered list",
			doc:      "1. one\n2. two",
			expected: "<div><ol><li>one</li><li>two</li></ol></div>",
		},
		{
			name:     "non sequential list is a paragraph",
			doc:      "1. a\n3. b",
			expected: "<div><p>1. a 3. b</p></div>",
		},
		{
			name:     "image",
			doc:      "![alt](http://x/y.png)",
			expected: "<div><p><img src=\"http://x/y.png\" alt=\"alt\" /></p></div>",
		},
		{
			name:     "link",
			doc:      "see [docs](https://example.com) now",
			expected: "<div><p>see <a href=\"https://example.com\">docs</a> now</p></div>",
		},
		{
			name:     "malformed markup is plain",
			doc:      "a **b and [c](d",
			expected: "<div><p>a **b and [c](d</p></div>",
		},
		{
			name:     "crlf line endings",
			doc:      "# T\r\n\r\nbody",
			expected: "<div><h1>T</h1><p>body</p></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := markdown.ToHTML(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConverter_ListModes(t *testing.T) {
	t.Parallel()

	doc := "- _a\n- b_"

	joined, err := markdown.NewConverter(markdown.Options{ListMode: markdown.ListJoined}).ToHTML(doc)
	require.NoError(t, err)
	assert.Equal(t, "<div><ul><li><i>a</li><li>b</i></li></ul></div>", joined)

	perItem, err := markdown.NewConverter(markdown.Options{ListMode: markdown.ListPerItem}).ToHTML(doc)
	require.NoError(t, err)
	assert.Equal(t, "<div><ul><li>_a</li><li>b_</li></ul></div>", perItem)
}

func TestConverter_PerItemTree(t *testing.T) {
	t.Parallel()

	conv := markdown.NewConverter(markdown.Options{ListMode: markdown.ListPerItem})
	root, err := conv.ToTree("1. **one**\n2. two\n3. three")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	list, ok := root.Children[0].(*htmlnode.Parent)
	require.True(t, ok)
	assert.Equal(t, "ol", list.Tag)
	require.Len(t, list.Children, 3)

	for _, child := range list.Children {
		item, ok := child.(*htmlnode.Parent)
		require.True(t, ok)
		assert.Equal(t, "li", item.Tag)
	}
}

func TestConverter_DefaultOptions(t *testing.T) {
	t.Parallel()

	conv := markdown.NewConverter(markdown.Options{})
	assert.Equal(t, markdown.ListJoined, conv.Options().ListMode)
	assert.False(t, conv.Options().DetectCodeLanguage)
	assert.False(t, conv.Options().InfoStringClass)
}

func TestConverter_InfoStringClass(t *testing.T) {
	t.Parallel()

	conv := markdown.NewConverter(markdown.Options{InfoStringClass: true})

	tests := []struct {
		name     string
		doc      string
		expected string
	}{
		{
			name:     "info string becomes class",
			doc:      "```go\nx := 1\n```",
			expected: "<div><pre><code class=\"language-go\">x := 1\n</code></pre></div>",
		},
		{
			name:     "info string is normalized",
			doc:      "```Python\nprint(1)\n```",
			expected: "<div><pre><code class=\"language-python\">print(1)\n</code></pre></div>",
		},
		{
			name:     "no info string",
			doc:      "```\nplain\n```",
			expected: "<div><pre><code>plain\n</code></pre></div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConverter_DetectCodeLanguage(t *testing.T) {
	t.Parallel()

	doc := "```\n#!/usr/bin/env python3\nprint('hi')\n```"

	plain, err := markdown.ToHTML(doc)
	require.NoError(t, err)
	assert.NotContains(t, plain, "class=")

	detected, err := markdown.NewConverter(markdown.Options{DetectCodeLanguage: true}).ToHTML(doc)
	require.NoError(t, err)
	assert.Contains(t, detected, `<code class="language-python">`)
}

func TestListMode_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, markdown.ListJoined.IsValid())
	assert.True(t, markdown.ListPerItem.IsValid())
	assert.False(t, markdown.ListMode("nested").IsValid())
	assert.False(t, markdown.ListMode("").IsValid())
}

func TestToTree_BlockOrder(t *testing.T) {
	t.Parallel()

	doc := "# Title\n\n> quote\n\n```\ncode\n```\n\n- item\n\n1. first\n\ntext"
	root, err := markdown.ToTree(doc)
	require.NoError(t, err)
	assert.Equal(t, markdown.RootTag, root.Tag)

	tags := make([]string, 0, len(root.Children))
	for _, child := range root.Children {
		parent, ok := child.(*htmlnode.Parent)
		require.True(t, ok)
		tags = append(tags, parent.Tag)
	}
	assert.Equal(t, []string{"h1", "blockquote", "pre", "ul", "ol", "p"}, tags)
}

func TestToHTML_Structure(t *testing.T) {
	t.Parallel()

	doc := strings.Join([]string{
		"# Guide",
		"Read the [intro](/intro) and the [faq](/faq).",
		"![logo](/img/logo.png)",
		"- **fast**\n- small",
	}, "\n\n")

	out, err := markdown.ToHTML(doc)
	require.NoError(t, err)

	page, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, "Guide", page.Find("div > h1").Text())
	assert.Equal(t, 2, page.Find("p > a").Length())

	href, ok := page.Find("p > a").Last().Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/faq", href)

	src, ok := page.Find("img").Attr("src")
	require.True(t, ok)
	assert.Equal(t, "/img/logo.png", src)

	assert.Equal(t, 2, page.Find("ul > li").Length())
	assert.Equal(t, "fast", page.Find("ul > li > b").Text())
}
