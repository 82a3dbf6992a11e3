package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdsite/pkg/fsutil"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}
	}
}

func TestCopyTree(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "public")

	files := map[string]string{
		"index.css":        "body{}",
		"images/logo.png":  "png",
		"images/icons/a.s": "svg",
	}
	writeTree(t, src, files)
	if err := os.MkdirAll(filepath.Join(src, "empty"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	stats, err := fsutil.CopyTree(context.Background(), src, dst)
	if err != nil {
		t.Fatalf("CopyTree() error = %v", err)
	}

	if stats.Files != len(files) {
		t.Errorf("Files = %d, want %d", stats.Files, len(files))
	}
	if stats.Dirs != 4 {
		t.Errorf("Dirs = %d, want 4", stats.Dirs)
	}
	if stats.Bytes != int64(len("body{}")+len("png")+len("svg")) {
		t.Errorf("Bytes = %d", stats.Bytes)
	}

	for rel, want := range files {
		got, err := os.ReadFile(filepath.Join(dst, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", rel, got, want)
		}
	}

	if stat, err := os.Stat(filepath.Join(dst, "empty")); err != nil || !stat.IsDir() {
		t.Errorf("empty directory not mirrored: %v", err)
	}
}

func TestCopyTree_DestinationInsideSource(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"index.css":        "body{}",
		"public/stale.txt": "old",
	})
	dst := filepath.Join(src, "public")

	stats, err := fsutil.CopyTree(context.Background(), src, dst)
	if err != nil {
		t.Fatalf("CopyTree() error = %v", err)
	}
	if stats.Files != 1 {
		t.Errorf("Files = %d, want 1", stats.Files)
	}
	if _, err := os.Stat(filepath.Join(dst, "index.css")); err != nil {
		t.Errorf("index.css not copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "public")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("destination was copied into itself: %v", err)
	}
}

func TestCopyTree_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		_, err := fsutil.CopyTree(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir())
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("source is a file", func(t *testing.T) {
		t.Parallel()

		src := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(src, nil, 0o644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		_, err := fsutil.CopyTree(context.Background(), src, t.TempDir())
		if !errors.Is(err, fsutil.ErrNotDirectory) {
			t.Fatalf("error = %v, want ErrNotDirectory", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()

		src := t.TempDir()
		writeTree(t, src, map[string]string{"a.txt": "a"})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsutil.CopyTree(ctx, src, t.TempDir())
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
	})
}

func TestCopyFile_KeepsMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "run.sh")
	if err := os.WriteFile(src, []byte("#!/bin/sh"), 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.Chmod(src, 0o755); err != nil {
		t.Fatalf("setup: %v", err)
	}

	dst := filepath.Join(dir, "out", "run.sh")
	n, err := fsutil.CopyFile(context.Background(), src, dst)
	if err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}
	if n != int64(len("#!/bin/sh")) {
		t.Errorf("bytes = %d", n)
	}

	stat, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if stat.Mode().Perm() != 0o755 {
		t.Errorf("mode = %o, want %o", stat.Mode().Perm(), 0o755)
	}
}
