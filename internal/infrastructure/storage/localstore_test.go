package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	path, err := store.Save(ctx, "receipt.JPG", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".jpg", filepath.Ext(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	t.Run("same filename never collides", func(t *testing.T) {
		other, err := store.Save(ctx, "receipt.JPG", strings.NewReader("different"))
		require.NoError(t, err)
		assert.NotEqual(t, path, other)
	})
}

func TestLocalStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	path, err := store.Save(ctx, "note.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, path))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	t.Run("deleting twice is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, path))
	})

	t.Run("refuses paths outside the base directory", func(t *testing.T) {
		outside := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

		assert.Error(t, store.Delete(ctx, outside))
		_, err := os.Stat(outside)
		assert.NoError(t, err)
	})
}
