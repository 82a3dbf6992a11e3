// Package runner discovers markdown sources and processes them on a worker pool.
package runner

// Options controls discovery and concurrency.
type Options struct {
	// Root is the directory searched for sources. Empty means the current
	// working directory.
	Root string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// treated as markdown. Defaults to DefaultExtensions().
	Extensions []string

	// ExcludeGlobs are slash-separated patterns, relative to Root, for files
	// or directories to skip. "**" matches any number of path segments.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int
}

// DefaultExtensions returns the default set of markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectiveRoot() string {
	if o.Root == "" {
		return "."
	}
	return o.Root
}
