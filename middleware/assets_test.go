package middleware

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFileHash(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.css")
	require.NoError(t, os.WriteFile(tmpFile, []byte("body { color: red; }"), 0644))

	hash := computeFileHash(tmpFile)
	assert.Len(t, hash, 8)

	assert.Empty(t, computeFileHash("non_existent_file.css"))
}

func TestComputeAssetVersions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, AssetStyleCSS), []byte("css"), 0644))

	versions := computeAssetVersions(dir, AssetStyleCSS, AssetAppJS)
	assert.Len(t, versions[AssetStyleCSS], 8)
	assert.Equal(t, "1", versions[AssetAppJS])
}

func TestShippedAssetsExist(t *testing.T) {
	for _, asset := range []string{AssetStyleCSS, AssetAppJS, AssetFavicon} {
		_, err := os.Stat(filepath.Join("..", "static", asset))
		assert.NoError(t, err, asset)
	}
}

func TestAssetURL(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "1", AssetVersion(ctx, "unknown.js"))
	assert.Contains(t, AssetURL(ctx, "unknown.js"), "/static/unknown.js?v=")
}
