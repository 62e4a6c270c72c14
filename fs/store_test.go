package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docgrab"
	"github.com/fwojciec/docgrab/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Init(t *testing.T) {
	t.Parallel()

	t.Run("creates nested output folder", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out", "course")
		store := fs.NewStore(dir)

		require.NoError(t, store.Init())

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("existing folder is fine", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		require.NoError(t, fs.NewStore(dir).Init())
	})

	t.Run("empty folder name is invalid", func(t *testing.T) {
		t.Parallel()

		err := fs.NewStore("").Init()

		assert.Equal(t, docgrab.EINVALID, docgrab.ErrorCode(err))
	})
}

func TestStore_PathFor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewStore(dir)

	assert.Equal(t, filepath.Join(dir, "lesson-1.pdf"), store.PathFor("https://example.com/course/lesson-1"))
	assert.Equal(t, filepath.Join(dir, "lesson-1.pdf"), store.PathFor("https://example.com/course/Lesson_1/"))
	assert.Equal(t, filepath.Join(dir, "combined.pdf"), store.CombinedPath())
}

func TestStore_Exists(t *testing.T) {
	t.Parallel()

	t.Run("reports missing file", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		ok, err := store.Exists(store.PathFor("https://example.com/course/lesson-1"))

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("colliding slugs share one path", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())
		first := store.PathFor("https://example.com/course/a/intro")
		require.NoError(t, os.WriteFile(first, []byte("%PDF"), 0644))

		ok, err := store.Exists(store.PathFor("https://example.com/course/b/intro"))

		require.NoError(t, err)
		assert.True(t, ok, "second subpage with same slug should see the first file")
	})
}

func TestStore_Documents(t *testing.T) {
	t.Parallel()

	t.Run("lists documents sorted by filename", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for _, name := range []string{"c.pdf", "a.pdf", "b.pdf", "notes.txt", "combined.pdf"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
		}
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0755))

		docs, err := fs.NewStore(dir).Documents()

		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.pdf"),
			filepath.Join(dir, "b.pdf"),
			filepath.Join(dir, "c.pdf"),
		}, docs)
	})

	t.Run("empty folder has no documents", func(t *testing.T) {
		t.Parallel()

		docs, err := fs.NewStore(t.TempDir()).Documents()

		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("missing folder is an error", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewStore(filepath.Join(t.TempDir(), "nope")).Documents()

		assert.Error(t, err)
	})
}
