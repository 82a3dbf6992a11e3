package render

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdsite/pkg/htmlnode"
	"github.com/yaklabco/mdsite/pkg/markdown"
)

// Builtin renders with the markdown package.
type Builtin struct {
	conv *markdown.Converter
}

// NewBuiltin creates a builtin engine.
func NewBuiltin(opts markdown.Options) *Builtin {
	return &Builtin{conv: markdown.NewConverter(opts)}
}

// Name implements Engine.
func (b *Builtin) Name() string {
	return EngineBuiltin
}

// Render implements Engine.
func (b *Builtin) Render(ctx context.Context, doc string) (string, error) {
	root, err := b.Tree(ctx, doc)
	if err != nil {
		return "", err
	}

	out, err := root.HTML()
	if err != nil {
		return "", fmt.Errorf("serialize: %w", err)
	}
	return out, nil
}

// Tree compiles doc without serializing it.
func (b *Builtin) Tree(ctx context.Context, doc string) (*htmlnode.Parent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render cancelled: %w", err)
	}

	root, err := b.conv.ToTree(doc)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return root, nil
}
