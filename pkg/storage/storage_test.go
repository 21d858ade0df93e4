package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shashiranjanraj/dinehub/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanPath(t *testing.T) {
	cases := map[string]string{
		"images/a.jpg":     "images/a.jpg",
		"/images//b.png":   "images/b.png",
		`images\c.gif`:     "images/c.gif",
		"images/../d.webp": "d.webp",
		"../../etc/passwd": "etc/passwd",
	}
	for in, want := range cases {
		got, err := cleanPath(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := cleanPath("/")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestLocalDiskRoundTrip(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	d := NewLocalDisk(root, "http://localhost:8080/storage/")

	require.NoError(t, d.Put(ctx, "images/menu.png", strings.NewReader("png-bytes"), "image/png"))
	assert.True(t, d.Exists(ctx, "images/menu.png"))

	data, err := os.ReadFile(filepath.Join(root, "images", "menu.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
	assert.Equal(t, "http://localhost:8080/storage/images/menu.png", d.URL("images/menu.png"))

	require.NoError(t, d.Delete(ctx, "images/menu.png"))
	assert.False(t, d.Exists(ctx, "images/menu.png"))
	assert.NoError(t, d.Delete(ctx, "images/menu.png"), "deleting twice is fine")
}

func TestConnectRejectsUnknownDefault(t *testing.T) {
	config.Set("STORAGE_LOCAL_ROOT", t.TempDir())
	config.Set("STORAGE_DISK", "ftp")
	t.Cleanup(config.Reset)

	assert.ErrorContains(t, Connect(), `"ftp"`)

	config.Set("STORAGE_DISK", "local")
	require.NoError(t, Connect())
	root, ok := LocalRoot()
	assert.True(t, ok)
	assert.NotEmpty(t, root)
	assert.NotNil(t, Default())
}
