package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hightemp/zipzap/internal/countries"
	"github.com/hightemp/zipzap/internal/wiki"
)

// Fetcher returns the export of a wiki page.
type Fetcher interface {
	FetchExport(ctx context.Context, page string) (*wiki.Export, error)
}

// Result is the outcome of one extraction run.
type Result struct {
	RunID     string    `json:"run_id"`
	Page      string    `json:"page"`
	SourceURL string    `json:"source_url"`
	FetchedAt time.Time `json:"fetched_at"`
	Stats     Stats     `json:"stats"`
	Entries   []Entry   `json:"entries"`
	Raw       string    `json:"-"`
}

// Extractor fetches the postal code list and builds format table entries.
type Extractor struct {
	fetcher Fetcher
	source  countries.Source
	page    string
	logger  *slog.Logger
}

// New creates an extractor. A nil logger uses slog.Default.
func New(fetcher Fetcher, source countries.Source, page string, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		fetcher: fetcher,
		source:  source,
		page:    page,
		logger:  logger,
	}
}

// Run fetches the page, scans it, and completes the result with the canonical
// country list. Malformed rows never fail the run.
func (e *Extractor) Run(ctx context.Context) (*Result, error) {
	runID := uuid.NewString()
	log := e.logger.With("run_id", runID)

	log.Info("fetching export", "page", e.page)
	export, err := e.fetcher.FetchExport(ctx, e.page)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	fetchedAt := time.Now().UTC()
	log.Debug("fetched export", "url", export.URL, "bytes", len(export.Wikitext))

	canonical, err := e.source.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load canonical countries: %w", err)
	}

	entries, stats := Process(export.Wikitext, canonical, log)

	log.Info("extraction complete",
		"records", stats.Records,
		"skipped", stats.Skipped,
		"filled", stats.Filled,
		"entries", stats.Entries,
	)

	return &Result{
		RunID:     runID,
		Page:      e.page,
		SourceURL: export.URL,
		FetchedAt: fetchedAt,
		Stats:     stats,
		Entries:   entries,
		Raw:       export.Wikitext,
	}, nil
}

// Process scans wikitext and builds sorted entries, filling in every canonical
// country that the text does not mention.
func Process(wikitext string, canonical []countries.Country, log *slog.Logger) ([]Entry, Stats) {
	if log == nil {
		log = slog.Default()
	}

	b := NewBuilder()
	defer b.Close()
	for _, rec := range ScanRecords(wikitext) {
		if !b.Add(rec) {
			log.Debug("skipping record without ISO code", "line", rec.Line, "country", rec.Country)
		}
	}
	b.Complete(canonical)

	return b.Entries(), b.Stats()
}
