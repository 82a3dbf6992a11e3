package inline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdsite/pkg/inline"
)

func TestToNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		span     inline.Span
		expected string
	}{
		{"plain", plain("This is a text node"), "This is a text node"},
		{"bold", inline.Span{Text: "bold", Kind: inline.Bold}, "<b>bold</b>"},
		{"italic", inline.Span{Text: "it", Kind: inline.Italic}, "<i>it</i>"},
		{"code", inline.Span{Text: "x()", Kind: inline.Code}, "<code>x()</code>"},
		{
			"link",
			inline.Span{Text: "boot", Kind: inline.Link, URL: "https://boot.dev"},
			`<a href="https://boot.dev">boot</a>`,
		},
		{
			"image",
			inline.Span{Text: "alt", Kind: inline.Image, URL: "http://x/y.png"},
			`<img src="http://x/y.png" alt="alt" />`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			node, err := inline.ToNode(testCase.span)
			require.NoError(t, err)

			got, err := node.HTML()
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestToNode_ImageLeafHasEmptyValue(t *testing.T) {
	t.Parallel()

	node, err := inline.ToNode(inline.Span{Text: "alt", Kind: inline.Image, URL: "a.png"})
	require.NoError(t, err)
	require.NotNil(t, node.Value)
	assert.Empty(t, *node.Value)
	assert.Equal(t, []string{"src", "alt"}, node.Attrs.Keys())
}

func TestToNode_UnknownKind(t *testing.T) {
	t.Parallel()

	_, err := inline.ToNode(inline.Span{Text: "x", Kind: inline.Kind(99)})
	require.ErrorIs(t, err, inline.ErrUnknownKind)

	_, err = inline.ToNodes([]inline.Span{plain("ok"), {Kind: inline.Kind(42)}})
	require.ErrorIs(t, err, inline.ErrUnknownKind)
}

func TestKind_StringAndTag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bold", inline.Bold.String())
	assert.Equal(t, "unknown", inline.Kind(99).String())
	assert.Equal(t, "", inline.Plain.Tag())
	assert.Equal(t, "a", inline.Link.Tag())
	assert.Equal(t, "img", inline.Image.Tag())
}
