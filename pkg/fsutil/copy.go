package fsutil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// CopyFile copies src to dst atomically, keeping the source file mode.
func CopyFile(ctx context.Context, src, dst string) (int64, error) {
	content, info, err := ReadFile(ctx, src)
	if err != nil {
		return 0, err
	}

	if err := WriteAtomic(ctx, dst, content, info.Mode.Perm()); err != nil {
		return 0, fmt.Errorf("copy %s: %w", src, err)
	}
	return info.Size, nil
}

// CopyStats summarizes a CopyTree call.
type CopyStats struct {
	// Files is the number of regular files copied.
	Files int

	// Dirs is the number of directories created, including the root.
	Dirs int

	// Bytes is the total size of copied files.
	Bytes int64
}

// CopyTree mirrors the directory src into dst, creating dst if needed.
// Existing files in dst are overwritten; files only present in dst are kept.
// Symlinks and other non-regular files are skipped, as is dst itself when it
// lies inside src.
func CopyTree(ctx context.Context, src, dst string) (CopyStats, error) {
	var stats CopyStats

	src, err := filepath.Abs(src)
	if err != nil {
		return stats, fmt.Errorf("resolve %s: %w", src, err)
	}
	dst, err = filepath.Abs(dst)
	if err != nil {
		return stats, fmt.Errorf("resolve %s: %w", dst, err)
	}

	root, err := os.Stat(src)
	if err != nil {
		return stats, classify(src, err)
	}
	if !root.IsDir() {
		return stats, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}

	err = filepath.WalkDir(src, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("copy tree: %w", err)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		target := filepath.Join(dst, rel)

		switch {
		case entry.IsDir() && path == dst:
			return filepath.SkipDir
		case entry.IsDir():
			if err := EnsureDir(target); err != nil {
				return err
			}
			stats.Dirs++
		case entry.Type().IsRegular():
			n, err := CopyFile(ctx, path, target)
			if err != nil {
				return err
			}
			stats.Files++
			stats.Bytes += n
		}

		return nil
	})

	return stats, err
}
