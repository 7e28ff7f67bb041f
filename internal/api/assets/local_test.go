package assets

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "public", "profile-images")

	s, err := NewLocalStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Ping(ctx))

	require.NoError(t, s.Put(ctx, "one.png", "image/png", strings.NewReader("png-bytes")))

	rc, info, err := s.Open(ctx, "one.png")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	require.Equal(t, "png-bytes", string(body))
	require.Equal(t, Info{ContentType: "image/png", Size: 9}, info)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")

	require.NoError(t, s.Remove(ctx, "one.png"))
	require.ErrorIs(t, s.Remove(ctx, "one.png"), ErrNotFound)

	_, _, err = s.Open(ctx, "one.png")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.ErrorIs(t, s.Put(ctx, "../escape.png", "image/png", strings.NewReader("x")), ErrInvalidName)
	_, _, err = s.Open(ctx, "../../etc/passwd")
	require.ErrorIs(t, err, ErrInvalidName)
	require.ErrorIs(t, s.Remove(ctx, "a/b"), ErrInvalidName)
}

func TestLocalStore_PingMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "imgs")
	s, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(dir))
	require.Error(t, s.Ping(context.Background()))
}

func TestLocalStore_TempFilesNotAddressable(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocalStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".upload-42"), []byte("partial"), 0o600))

	_, _, err = s.Open(ctx, ".upload-42")
	require.ErrorIs(t, err, ErrInvalidName)
	require.ErrorIs(t, s.Remove(ctx, ".upload-42"), ErrInvalidName)
}
