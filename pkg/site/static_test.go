package site_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdsite/pkg/site"
)

func TestCopyStatic(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"static/index.css":       "body{}",
		"static/images/logo.png": "png",
		"public/old.html":        "stale",
	})

	stats, err := site.CopyStatic(context.Background(), filepath.Join(root, "static"), filepath.Join(root, "public"))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Files)

	assert.FileExists(t, filepath.Join(root, "public", "index.css"))
	assert.FileExists(t, filepath.Join(root, "public", "images", "logo.png"))
	assert.NoFileExists(t, filepath.Join(root, "public", "old.html"))
}

func TestCopyStatic_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, map[string]string{"public/keep.html": "x"})

		_, err := site.CopyStatic(context.Background(), filepath.Join(root, "static"), filepath.Join(root, "public"))
		require.ErrorIs(t, err, site.ErrStaticNotFound)
		assert.FileExists(t, filepath.Join(root, "public", "keep.html"))
	})

	t.Run("destination contains source", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, map[string]string{"static/a.css": "a"})

		_, err := site.CopyStatic(context.Background(), filepath.Join(root, "static"), root)
		require.ErrorIs(t, err, site.ErrUnsafeOutputDir)
	})

	t.Run("destination inside source", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFiles(t, root, map[string]string{"static/a.css": "a"})
		static := filepath.Join(root, "static")

		_, err := site.CopyStatic(context.Background(), static, filepath.Join(static, "public"))
		require.ErrorIs(t, err, site.ErrUnsafeOutputDir)
		assert.NoDirExists(t, filepath.Join(static, "public"))
		assert.FileExists(t, filepath.Join(static, "a.css"))
	})
}

func TestCheckCleanable(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, site.CheckCleanable("/"), site.ErrUnsafeOutputDir)
	require.ErrorIs(t, site.CheckCleanable("."), site.ErrUnsafeOutputDir)
	require.ErrorIs(t, site.CheckCleanable(".."), site.ErrUnsafeOutputDir)

	root := t.TempDir()
	require.NoError(t, site.CheckCleanable(filepath.Join(root, "public"), filepath.Join(root, "content")))
	require.ErrorIs(t,
		site.CheckCleanable(root, filepath.Join(root, "content")),
		site.ErrUnsafeOutputDir)
}

func TestCleanDir(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{"public/a/b.html": "x"})

	require.NoError(t, site.CleanDir(filepath.Join(root, "public")))
	assert.DirExists(t, filepath.Join(root, "public"))
	assert.NoFileExists(t, filepath.Join(root, "public", "a", "b.html"))
}
