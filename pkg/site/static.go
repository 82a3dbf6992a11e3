package site

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/mdsite/pkg/fsutil"
)

var (
	// ErrStaticNotFound is returned when the static source directory is missing.
	ErrStaticNotFound = errors.New("static directory not found")

	// ErrUnsafeOutputDir is returned when cleaning would remove a directory
	// that must survive the build.
	ErrUnsafeOutputDir = errors.New("refusing to clean output directory")
)

// CopyStatic replaces dst with a mirror of src.
func CopyStatic(ctx context.Context, src, dst string) (fsutil.CopyStats, error) {
	info, err := os.Stat(src)
	if err != nil || !info.IsDir() {
		return fsutil.CopyStats{}, fmt.Errorf("%w: %s", ErrStaticNotFound, src)
	}

	if err := checkOutsideStatic(dst, src); err != nil {
		return fsutil.CopyStats{}, err
	}

	if err := CleanDir(dst, src); err != nil {
		return fsutil.CopyStats{}, err
	}

	return fsutil.CopyTree(ctx, src, dst)
}

// CleanDir removes dir and recreates it empty after CheckCleanable.
func CleanDir(dir string, keep ...string) error {
	if err := CheckCleanable(dir, keep...); err != nil {
		return err
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove %s: %w", dir, err)
	}

	return fsutil.EnsureDir(dir)
}

// CheckCleanable refuses the filesystem root, the working directory or one
// of its parents, and any directory containing one of keep.
func CheckCleanable(dir string, keep ...string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dir, err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	if abs == filepath.Dir(abs) || within(wd, abs) {
		return fmt.Errorf("%w: %s", ErrUnsafeOutputDir, dir)
	}

	for _, path := range keep {
		if path == "" {
			continue
		}
		keepAbs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		if within(keepAbs, abs) {
			return fmt.Errorf("%w: %s contains %s", ErrUnsafeOutputDir, dir, path)
		}
	}

	return nil
}

// checkOutsideStatic refuses an output directory at or below the static
// directory, which would be mirrored into itself.
func checkOutsideStatic(out, static string) error {
	outAbs, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", out, err)
	}
	staticAbs, err := filepath.Abs(static)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", static, err)
	}
	if within(outAbs, staticAbs) {
		return fmt.Errorf("%w: %s is inside static directory %s", ErrUnsafeOutputDir, out, static)
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !filepath.IsAbs(rel) && !startsWithParent(rel))
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
