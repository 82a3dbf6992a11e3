package runner

import (
	"path"
	"strings"
)

// matchesAny reports whether rel matches one of patterns.
func matchesAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if MatchGlob(pattern, rel) {
			return true
		}
	}
	return false
}

// MatchGlob matches a slash-separated relative path against pattern.
// Segments follow path.Match; a "**" segment matches zero or more segments.
// A pattern without a slash also matches the base name, so "*.draft.md"
// excludes drafts at any depth.
func MatchGlob(pattern, rel string) bool {
	pattern = strings.Trim(pattern, "/")
	if pattern == "" {
		return false
	}

	if !strings.Contains(pattern, "/") && pattern != "**" {
		if ok, _ := path.Match(pattern, path.Base(rel)); ok {
			return true
		}
	}

	return matchSegments(strings.Split(pattern, "/"), strings.Split(rel, "/"))
}

func matchSegments(pattern, parts []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for skip := 0; skip <= len(parts); skip++ {
				if matchSegments(rest, parts[skip:]) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}
		if ok, err := path.Match(pattern[0], parts[0]); err != nil || !ok {
			return false
		}

		pattern = pattern[1:]
		parts = parts[1:]
	}

	return len(parts) == 0
}
