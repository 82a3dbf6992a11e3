// Package langdetect guesses the programming language of a code block so it
// can be labelled with a language-* class. It wraps go-enry.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// candidates limits the classifier to languages likely to show up in site content.
//
//nolint:gochecknoglobals // Read-only lookup table.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// aliases maps go-enry names to the short names used in class attributes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var aliases = map[string]string{
	"Shell":      "bash",
	"C++":        "cpp",
	"JavaScript": "javascript",
	"TypeScript": "typescript",
}

// Detect returns the language of code and whether detection was confident.
// Only confident results should be used to label output.
func Detect(code string) (string, bool) {
	content := []byte(code)
	if strings.TrimSpace(code) == "" {
		return "", false
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe && lang != "" {
		return Normalize(lang), true
	}

	if lang := byPrefix(strings.TrimSpace(code)); lang != "" {
		return lang, true
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return Normalize(lang), true
	}

	return "", false
}

// Normalize converts a language name (go-enry or fence info string) to the
// lower-case form used in class names.
func Normalize(lang string) string {
	lang = strings.TrimSpace(lang)
	if alias, ok := aliases[lang]; ok {
		return alias
	}
	if fields := strings.Fields(lang); len(fields) > 0 {
		lang = fields[0]
	}
	return strings.ToLower(lang)
}

// byPrefix recognizes a few unambiguous openings the classifier tends to miss
// on short snippets.
func byPrefix(trimmed string) string {
	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(trimmed, "package "):
		return "go"
	case strings.HasPrefix(lower, "<!doctype html"), strings.HasPrefix(lower, "<html"):
		return "html"
	case strings.HasPrefix(trimmed, "FROM "):
		return "dockerfile"
	case strings.HasPrefix(trimmed, "fn main()"):
		return "rust"
	case strings.HasPrefix(trimmed, "def ") && strings.Contains(trimmed, "):"):
		return "python"
	}

	upper := strings.ToUpper(trimmed)
	for _, keyword := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, keyword) {
			return "sql"
		}
	}
	return ""
}
