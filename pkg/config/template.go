package config

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Format is the output format: "yaml" or "json".
	Format string

	// Minimal omits the commented-out optional settings.
	Minimal bool
}

// GenerateTemplate creates a configuration file template holding the
// default settings.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == FormatJSON {
		return NewConfig().Marshal(FormatJSON)
	}

	if opts.Minimal {
		return []byte(DefaultTemplateHeader() + "\n\n" + minimalTemplate), nil
	}
	return []byte(DefaultTemplateHeader() + "\n\n" + minimalTemplate + optionalTemplate), nil
}

const minimalTemplate = `# Directory holding the markdown sources
content_dir: content

# Directory mirrored into the output before pages are generated
static_dir: static

# Directory receiving the generated site
output_dir: public

# Page template with {{ Title }} and {{ Content }} placeholders
template: template.html

# Prefix for root-relative links, e.g. /my-project/ on GitHub Pages
base_path: /
`

const optionalTemplate = `
# Markdown renderer: builtin or goldmark
# engine: builtin

# Remove the output directory before building
# clean: true

# Descend into symlinked directories under content_dir
# follow_symlinks: false

# Source patterns to skip (relative to content_dir)
# ignore:
#   - "drafts/**"
#   - "*.draft.md"

# markdown:
#   # List item tokenization: joined or per_item
#   list_mode: joined
#   # Move code fence info strings into a language-* class
#   info_string_class: false
#   # Label code blocks without an info string with a detected language
#   detect_language: false
#   # Apply Unicode NFC normalization to documents
#   normalize_unicode: false
#   # GitHub Flavored Markdown (goldmark engine only)
#   gfm: false
`

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# mdsite configuration
# See: https://github.com/yaklabco/mdsite`
}

// DefaultPageTemplate is the starter page template written by "mdsite init".
const DefaultPageTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{ Title }}</title>
    <link href="/index.css" rel="stylesheet" />
  </head>
  <body>
    <article>{{ Content }}</article>
  </body>
</html>
`
