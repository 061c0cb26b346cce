// Package config provides configuration and path management.
package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppName is the application name.
	AppName = "zipzap"

	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "ZIPZAP"

	// CacheDirName is the cache directory name.
	CacheDirName = ".zipzap"

	// SnapshotsDirName is the extraction runs subdirectory name.
	SnapshotsDirName = "extractions"

	// LatestSymlink is the name of the latest run symlink.
	LatestSymlink = "latest"

	// MetadataFileName is the metadata file name.
	MetadataFileName = "metadata.json"

	// TableFileName holds the rendered table literal of a run.
	TableFileName = "formats.txt"

	// RawFileName holds the wikitext a run was extracted from.
	RawFileName = "source.wikitext"

	// DefaultWikiURL is the wiki the export is fetched from.
	DefaultWikiURL = "https://en.wikipedia.org"

	// DefaultPage is the page listing postal code formats by country.
	DefaultPage = "List of postal codes"

	// DefaultUserAgent identifies the extractor to the wiki.
	DefaultUserAgent = "zipzap/1.0 (postal code table extractor)"

	// DefaultTimeout for fetching the export.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries for fetching the export.
	DefaultMaxRetries = 3

	// DefaultServerAddr is the listen address of the HTTP API.
	DefaultServerAddr = ":8080"

	// DefaultBatchConcurrency is the worker count for concurrent batch validation.
	DefaultBatchConcurrency = 4
)

// DefaultCacheDir returns the default cache directory path.
func DefaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory
		home = "."
	}
	return filepath.Join(home, CacheDirName, "cache")
}

// SnapshotsDir returns the extraction runs directory path.
func SnapshotsDir(cacheDir string) string {
	return filepath.Join(cacheDir, SnapshotsDirName)
}

// SnapshotDir returns the path for a specific run.
func SnapshotDir(cacheDir, date string) string {
	return filepath.Join(SnapshotsDir(cacheDir), date)
}

// LatestSnapshotPath returns the path to the latest symlink.
func LatestSnapshotPath(cacheDir string) string {
	return filepath.Join(SnapshotsDir(cacheDir), LatestSymlink)
}

// MetadataPath returns the metadata file path for a run.
func MetadataPath(snapshotDir string) string {
	return filepath.Join(snapshotDir, MetadataFileName)
}

// TablePath returns the rendered table path for a run.
func TablePath(snapshotDir string) string {
	return filepath.Join(snapshotDir, TableFileName)
}

// RawPath returns the raw wikitext path for a run.
func RawPath(snapshotDir string) string {
	return filepath.Join(snapshotDir, RawFileName)
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
