package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrRootNotDirectory is returned when the discovery root is not a directory.
var ErrRootNotDirectory = errors.New("discovery root is not a directory")

// Discover finds markdown files under opts.Root. Hidden files and
// directories are skipped. The result is sorted by relative path.
func Discover(ctx context.Context, opts Options) ([]Source, error) {
	root, err := filepath.Abs(opts.effectiveRoot())
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", opts.effectiveRoot(), err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}

	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root: %w", err)
	}

	w := &walker{
		root:       root,
		extensions: opts.effectiveExtensions(),
		opts:       opts,
		seen:       make(map[string]struct{}),
		visited:    map[string]struct{}{realRoot: {}},
	}
	if err := w.walk(ctx, root, ""); err != nil {
		return nil, err
	}

	sort.Slice(w.sources, func(i, j int) bool {
		return w.sources[i].Rel < w.sources[j].Rel
	})

	return w.sources, nil
}

type walker struct {
	root       string
	extensions []string
	opts       Options
	seen       map[string]struct{}
	// visited holds the real paths of the root and every followed
	// directory link. Each is walked at most once.
	visited map[string]struct{}
	sources []Source
}

// walk visits dir. prefix is the slash-separated path of dir relative to the
// discovery root, which differs from the real path under a followed symlink.
func (w *walker) walk(ctx context.Context, dir, prefix string) error {
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		rel = joinRel(prefix, filepath.ToSlash(rel))

		if path == dir {
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			if matchesAny(rel, w.opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			return w.symlink(ctx, path, rel)
		}

		w.add(path, rel)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk directory %s: %w", dir, err)
	}

	return nil
}

// symlink adds a file symlink or descends into a directory symlink when
// FollowSymlinks is set. Broken links are skipped.
func (w *walker) symlink(ctx context.Context, path, rel string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil //nolint:nilerr // Broken symlinks are skipped.
	}

	info, err := os.Stat(target)
	if err != nil {
		return nil //nolint:nilerr // Inaccessible targets are skipped.
	}

	if !info.IsDir() {
		w.add(path, rel)
		return nil
	}

	if !w.opts.FollowSymlinks || matchesAny(rel, w.opts.ExcludeGlobs) {
		return nil
	}

	if _, ok := w.visited[target]; ok {
		return nil
	}
	// A link to one of its own ancestors would be walked forever.
	if parent, err := filepath.EvalSymlinks(filepath.Dir(path)); err == nil && within(parent, target) {
		return nil
	}
	w.visited[target] = struct{}{}

	// Walking the target rather than the link avoids WalkDir's Lstat on root.
	return w.walk(ctx, target, rel)
}

func (w *walker) add(path, rel string) {
	if !hasExtension(path, w.extensions) || matchesAny(rel, w.opts.ExcludeGlobs) {
		return
	}
	if _, ok := w.seen[rel]; ok {
		return
	}
	w.seen[rel] = struct{}{}
	w.sources = append(w.sources, Source{Path: path, Rel: rel})
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func joinRel(prefix, rel string) string {
	switch {
	case prefix == "":
		return rel
	case rel == ".":
		return prefix
	default:
		return prefix + "/" + rel
	}
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
