package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/hightemp/zipzap/internal/config"
	"github.com/hightemp/zipzap/internal/extract"
	"github.com/hightemp/zipzap/internal/output"
)

// RunNameLayout names run directories after their creation time.
const RunNameLayout = "20060102-150405"

// ErrNoRuns is returned when no extraction run has been saved.
var ErrNoRuns = errors.New("no extraction runs available")

// Manager handles saved extraction runs.
type Manager struct {
	cacheDir string
}

// NewManager creates a new run manager.
func NewManager(cacheDir string) *Manager {
	return &Manager{cacheDir: cacheDir}
}

// RunName returns the directory name for a run created at t.
func RunName(t time.Time) string {
	return t.UTC().Format(RunNameLayout)
}

// GetRunDir returns the directory for a named run.
func (m *Manager) GetRunDir(name string) string {
	return config.SnapshotDir(m.cacheDir, name)
}

// CreateRun creates a new run directory.
func (m *Manager) CreateRun(name string) (string, error) {
	dir := m.GetRunDir(name)
	if err := config.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create run dir: %w", err)
	}
	return dir, nil
}

// RunExists checks if a run with metadata exists.
func (m *Manager) RunExists(name string) bool {
	_, err := os.Stat(config.MetadataPath(m.GetRunDir(name)))
	return err == nil
}

// Save stores an extraction result as a new run and points latest at it.
// The raw wikitext is kept only when keepRaw is set.
func (m *Manager) Save(res *extract.Result, countrySource string, keepRaw bool) (string, *Metadata, error) {
	meta := FromResult(res, countrySource)
	name := RunName(meta.CreatedAt)

	dir, err := m.CreateRun(name)
	if err != nil {
		return "", nil, err
	}

	var table bytes.Buffer
	if err := output.WriteTable(&table, res.Entries, output.FormatGo); err != nil {
		return "", nil, fmt.Errorf("render table: %w", err)
	}
	if err := os.WriteFile(config.TablePath(dir), table.Bytes(), 0644); err != nil {
		return "", nil, fmt.Errorf("write table: %w", err)
	}

	if keepRaw {
		if err := os.WriteFile(config.RawPath(dir), []byte(res.Raw), 0644); err != nil {
			return "", nil, fmt.Errorf("write raw: %w", err)
		}
		meta.HasRaw = true
	}

	// Metadata last so a run only counts once complete
	if err := meta.Save(config.MetadataPath(dir)); err != nil {
		return "", nil, fmt.Errorf("write metadata: %w", err)
	}

	if err := m.SetLatest(name); err != nil {
		return "", nil, fmt.Errorf("update latest: %w", err)
	}

	return dir, meta, nil
}

// GetLatestRun returns the latest run directory and metadata.
func (m *Manager) GetLatestRun() (string, *Metadata, error) {
	// First try the latest symlink
	latestPath := config.LatestSnapshotPath(m.cacheDir)
	target, err := os.Readlink(latestPath)
	if err == nil {
		if !filepath.IsAbs(target) {
			target = filepath.Join(config.SnapshotsDir(m.cacheDir), target)
		}
		meta, err := LoadMetadata(config.MetadataPath(target))
		if err == nil {
			return target, meta, nil
		}
	}

	// Fallback: most recent run by name
	runs, err := m.ListRuns()
	if err != nil {
		return "", nil, err
	}
	if len(runs) == 0 {
		return "", nil, ErrNoRuns
	}

	latest := runs[len(runs)-1]
	dir := m.GetRunDir(latest)
	meta, err := LoadMetadata(config.MetadataPath(dir))
	if err != nil {
		return "", nil, fmt.Errorf("load metadata for %s: %w", latest, err)
	}

	return dir, meta, nil
}

// GetRun returns a named run.
func (m *Manager) GetRun(name string) (string, *Metadata, error) {
	dir := m.GetRunDir(name)
	metaPath := config.MetadataPath(dir)

	if _, err := os.Stat(metaPath); os.IsNotExist(err) {
		return "", nil, fmt.Errorf("run %s not found, see: %s runs", name, config.AppName)
	}

	meta, err := LoadMetadata(metaPath)
	if err != nil {
		return "", nil, fmt.Errorf("load metadata: %w", err)
	}

	return dir, meta, nil
}

// ListRuns returns the names of all saved runs, oldest first.
func (m *Manager) ListRuns() ([]string, error) {
	runsDir := config.SnapshotsDir(m.cacheDir)
	if err := config.EnsureDir(runsDir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(runsDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, err := time.Parse(RunNameLayout, name); err != nil {
			continue
		}
		if !m.RunExists(name) {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// SetLatest updates the latest symlink to point to the named run.
func (m *Manager) SetLatest(name string) error {
	latestPath := config.LatestSnapshotPath(m.cacheDir)

	// Remove existing symlink
	os.Remove(latestPath)

	// Create new symlink (relative path)
	return os.Symlink(name, latestPath)
}

// DeleteRun removes a run.
func (m *Manager) DeleteRun(name string) error {
	return os.RemoveAll(m.GetRunDir(name))
}
