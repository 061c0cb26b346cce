package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, DefaultWikiURL, cfg.Source.URL)
	assert.Equal(t, DefaultPage, cfg.Source.Page)
	assert.Equal(t, DefaultTimeout, cfg.Source.Timeout)
	assert.Equal(t, DefaultMaxRetries, cfg.Source.MaxRetries)
	assert.Equal(t, DefaultServerAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultBatchConcurrency, cfg.Batch.Concurrency)
	assert.Empty(t, cfg.Countries.DatabaseURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ZIPZAP_LOG_LEVEL", "debug")
	t.Setenv("ZIPZAP_SOURCE_TIMEOUT", "5s")
	t.Setenv("ZIPZAP_SOURCE_PAGE", "Postal codes")
	t.Setenv("ZIPZAP_SERVER_ADDR", "127.0.0.1:9090")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "Postal codes", cfg.Source.Page)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zipzap.yaml")
	content := `log_format: json
source:
  url: https://wiki.example.org
  max_retries: 1
countries:
  file: /tmp/countries.txt
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "https://wiki.example.org", cfg.Source.URL)
	assert.Equal(t, 1, cfg.Source.MaxRetries)
	assert.Equal(t, "/tmp/countries.txt", cfg.Countries.File)
	assert.Equal(t, DefaultPage, cfg.Source.Page)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("ZIPZAP_LOG_LEVEL", "verbose")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Source.URL = "not a url"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Source.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Countries.DatabaseURL = "postgres://user@localhost/countries"
	assert.NoError(t, cfg.Validate())
}

func TestPaths(t *testing.T) {
	dir := SnapshotDir("/cache", "2025-01-15")

	assert.Equal(t, filepath.Join("/cache", "extractions", "2025-01-15"), dir)
	assert.Equal(t, filepath.Join("/cache", "extractions", "latest"), LatestSnapshotPath("/cache"))
	assert.Equal(t, filepath.Join(dir, "metadata.json"), MetadataPath(dir))
	assert.Equal(t, filepath.Join(dir, "formats.txt"), TablePath(dir))
	assert.Equal(t, filepath.Join(dir, "source.wikitext"), RawPath(dir))
}
