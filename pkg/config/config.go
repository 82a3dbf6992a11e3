// Package config defines the site configuration types.
// These are plain data structures; discovery and merging live in
// internal/configloader. Engine names and list modes are owned by
// pkg/render and pkg/markdown.
package config

import (
	"github.com/yaklabco/mdsite/pkg/markdown"
	"github.com/yaklabco/mdsite/pkg/render"
)

// Default directory and file names.
const (
	DefaultContentDir = "content"
	DefaultStaticDir  = "static"
	DefaultOutputDir  = "public"
	DefaultTemplate   = "template.html"
	DefaultBasePath   = "/"
)

// MarkdownConfig tunes document conversion.
type MarkdownConfig struct {
	// ListMode is "joined" (items tokenized together) or "per_item".
	ListMode string `yaml:"list_mode"`

	// InfoStringClass turns a code fence info string into a language class.
	InfoStringClass bool `yaml:"info_string_class"`

	// DetectLanguage labels unlabeled code blocks with a detected language.
	DetectLanguage bool `yaml:"detect_language"`

	// NormalizeUnicode applies NFC normalization to documents before conversion.
	NormalizeUnicode bool `yaml:"normalize_unicode"`

	// GFM enables GitHub Flavored Markdown in the goldmark engine.
	GFM bool `yaml:"gfm"`
}

// Config is the root configuration structure for mdsite.
type Config struct {
	// ContentDir holds the markdown sources.
	ContentDir string `yaml:"content_dir"`

	// StaticDir is mirrored into OutputDir before pages are generated.
	// Empty disables the static copy.
	StaticDir string `yaml:"static_dir"`

	// OutputDir receives the generated site.
	OutputDir string `yaml:"output_dir"`

	// Template is the page template containing {{ Title }} and {{ Content }}.
	Template string `yaml:"template"`

	// BasePath prefixes root-relative href and src URLs in generated pages.
	BasePath string `yaml:"base_path"`

	// Engine selects the markdown renderer ("builtin" or "goldmark").
	Engine string `yaml:"engine"`

	// Ignore contains glob patterns, relative to ContentDir, to skip.
	Ignore []string `yaml:"ignore"`

	// Clean removes OutputDir before building.
	Clean bool `yaml:"clean"`

	// FollowSymlinks descends into symlinked directories under ContentDir.
	// Each target directory is visited once.
	FollowSymlinks bool `yaml:"follow_symlinks"`

	// Markdown tunes document conversion.
	Markdown MarkdownConfig `yaml:"markdown"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ContentDir: DefaultContentDir,
		StaticDir:  DefaultStaticDir,
		OutputDir:  DefaultOutputDir,
		Template:   DefaultTemplate,
		BasePath:   DefaultBasePath,
		Engine:     render.EngineBuiltin,
		Ignore:     nil,
		Clean:      true,
		Markdown: MarkdownConfig{
			ListMode: string(markdown.ListJoined),
		},
		Jobs: 0, // 0 means use runtime.NumCPU
	}
}
