// Package snapshot manages saved extraction runs.
package snapshot

import (
	"encoding/json"
	"os"
	"time"

	"github.com/hightemp/zipzap/internal/extract"
)

// Metadata describes one saved extraction run.
type Metadata struct {
	Version        int           `json:"version"`
	RunID          string        `json:"run_id"`
	CreatedAt      time.Time     `json:"created_at"`
	FetchedAt      time.Time     `json:"fetched_at"`
	Page           string        `json:"page"`
	SourceURL      string        `json:"source_url"`
	CountrySource  string        `json:"country_source"`
	Stats          extract.Stats `json:"stats"`
	CountriesCount int           `json:"countries_count"`
	EmptyCountries []string      `json:"empty_countries"`
	HasRaw         bool          `json:"has_raw"`
}

// MetadataVersion is the current metadata format version.
const MetadataVersion = 1

// NewMetadata creates a new metadata instance.
func NewMetadata() *Metadata {
	return &Metadata{
		Version:   MetadataVersion,
		CreatedAt: time.Now().UTC(),
	}
}

// FromResult fills metadata from an extraction result.
func FromResult(res *extract.Result, countrySource string) *Metadata {
	m := NewMetadata()
	m.RunID = res.RunID
	m.FetchedAt = res.FetchedAt
	m.Page = res.Page
	m.SourceURL = res.SourceURL
	m.CountrySource = countrySource
	m.Stats = res.Stats
	m.CountriesCount = len(res.Entries)
	m.EmptyCountries = []string{}
	for _, e := range res.Entries {
		if len(e.Formats) == 0 {
			m.EmptyCountries = append(m.EmptyCountries, e.Code)
		}
	}
	return m
}

// Save writes metadata to a file.
func (m *Metadata) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadMetadata loads metadata from a file.
func LoadMetadata(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	return &m, nil
}
