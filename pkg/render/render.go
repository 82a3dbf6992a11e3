// Package render selects the engine that turns a markdown document into
// HTML content for a page.
package render

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/yaklabco/mdsite/pkg/markdown"
)

// Engine names.
const (
	EngineBuiltin  = "builtin"
	EngineGoldmark = "goldmark"
)

// ErrUnknownEngine is returned by New for a name with no engine.
var ErrUnknownEngine = errors.New("unknown render engine")

// Engine converts a markdown document to an HTML fragment.
type Engine interface {
	// Name returns the engine name as accepted by New.
	Name() string

	// Render converts doc to HTML.
	Render(ctx context.Context, doc string) (string, error)
}

// Options configures engine construction.
type Options struct {
	// Markdown configures the builtin engine.
	Markdown markdown.Options

	// GFM enables GitHub Flavored Markdown in the goldmark engine.
	GFM bool
}

// New returns the engine registered under name. An empty name selects the
// builtin engine.
//
//nolint:ireturn // Callers choose the engine at runtime.
func New(name string, opts Options) (Engine, error) {
	switch name {
	case "", EngineBuiltin:
		return NewBuiltin(opts.Markdown), nil
	case EngineGoldmark:
		flavor := FlavorCommonMark
		if opts.GFM {
			flavor = FlavorGFM
		}
		return NewGoldmark(flavor), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownEngine, name, Names())
	}
}

// Names returns the available engine names in sorted order.
func Names() []string {
	names := []string{EngineBuiltin, EngineGoldmark}
	sort.Strings(names)
	return names
}

// IsValid reports whether name selects an engine.
func IsValid(name string) bool {
	switch name {
	case "", EngineBuiltin, EngineGoldmark:
		return true
	default:
		return false
	}
}
