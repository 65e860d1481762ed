package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Static assets referenced by the landing page, relative to the static root
const (
	AssetStyleCSS = "css/style.css"
	AssetAppJS    = "js/app.js"
	AssetFavicon  = "images/favicon.svg"
)

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup.
// Missing files get version "1".
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		assetVersions = computeAssetVersions(staticDir, AssetStyleCSS, AssetAppJS, AssetFavicon)
		log.Printf("[INFO] Asset versions initialized: %d files", len(assetVersions))
	})
}

func computeAssetVersions(staticDir string, assets ...string) map[string]string {
	versions := make(map[string]string, len(assets))
	for _, asset := range assets {
		version := computeFileHash(filepath.Join(staticDir, asset))
		if version == "" {
			version = "1"
		}
		versions[asset] = version
	}
	return versions
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the version hash of a static asset for cache busting.
// ctx is accepted for symmetry with the other view helpers.
func AssetVersion(ctx context.Context, asset string) string {
	if version, ok := assetVersions[asset]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the versioned public URL of a static asset
func AssetURL(ctx context.Context, asset string) string {
	return "/static/" + asset + "?v=" + AssetVersion(ctx, asset)
}
