package extract

import (
	"slices"
	"sort"
	"strings"

	"github.com/caffix/stringset"
	"github.com/hightemp/zipzap/internal/countries"
)

// Entry is one row of the generated format table.
type Entry struct {
	Code    string   `json:"code" yaml:"code"`
	Country string   `json:"country" yaml:"country"`
	Formats []string `json:"formats" yaml:"formats"`
	Notes   string   `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Builder merges scanned records into entries keyed by country code. Codes are
// upper-cased, so "ad" and "AD" rows merge.
type Builder struct {
	seen    *stringset.Set
	entries map[string]*Entry
	order   []string
	records int
	skipped int
	filled  int
}

// NewBuilder returns an empty builder. Call Close when done.
func NewBuilder() *Builder {
	return &Builder{
		seen:    stringset.New(),
		entries: make(map[string]*Entry),
	}
}

// Close releases the seen-code set.
func (b *Builder) Close() {
	b.seen.Close()
}

// Add merges a record. Records for a code seen before append their new formats
// and notes and keep the first country name. Records without an ISO code are
// skipped; Add reports whether the record was used.
func (b *Builder) Add(rec RawRecord) bool {
	b.records++

	code := strings.ToUpper(rec.ISO)
	if code == "" {
		b.skipped++
		return false
	}

	formats := SplitCodes(rec.Area, code)
	formats = append(formats, SplitCodes(rec.Street, code)...)

	if !b.seen.Has(code) {
		b.insert(&Entry{Code: code, Country: rec.Country, Formats: []string{}})
	}
	e := b.entries[code]

	e.Formats = dedupe(append(e.Formats, formats...))
	if e.Country == "" {
		e.Country = rec.Country
	}
	switch {
	case rec.Notes == "":
	case e.Notes == "":
		e.Notes = rec.Notes
	default:
		e.Notes += " " + rec.Notes
	}

	return true
}

// Complete adds an empty entry for every canonical country not seen yet and
// names scraped entries that had no country name. It returns the number of
// entries added.
func (b *Builder) Complete(canonical []countries.Country) int {
	added := 0
	for _, c := range canonical {
		code := strings.ToUpper(c.Code)
		if code == "" {
			continue
		}
		if !b.seen.Has(code) {
			b.insert(&Entry{Code: code, Country: c.Name, Formats: []string{}})
			added++
			continue
		}
		if e := b.entries[code]; e.Country == "" {
			e.Country = c.Name
		}
	}

	b.filled += added
	return added
}

func (b *Builder) insert(e *Entry) {
	b.seen.Insert(e.Code)
	b.entries[e.Code] = e
	b.order = append(b.order, e.Code)
}

// dedupe drops exact repeats, keeping first occurrences in order. Area and
// street cells, and merged rows, often list the same template.
func dedupe(formats []string) []string {
	result := make([]string, 0, len(formats))
	for i, f := range formats {
		if !slices.Contains(formats[:i], f) {
			result = append(result, f)
		}
	}
	return result
}

// Entries returns copies of all entries sorted by code.
func (b *Builder) Entries() []Entry {
	result := make([]Entry, 0, len(b.entries))
	for _, code := range b.order {
		e := b.entries[code]
		formats := make([]string, len(e.Formats))
		copy(formats, e.Formats)
		result = append(result, Entry{Code: e.Code, Country: e.Country, Formats: formats, Notes: e.Notes})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Code < result[j].Code
	})
	return result
}

// Stats counts what the builder has seen.
type Stats struct {
	Records int `json:"records"`
	Skipped int `json:"skipped"`
	Filled  int `json:"filled"`
	Entries int `json:"entries"`
}

// Stats returns the current counters.
func (b *Builder) Stats() Stats {
	return Stats{
		Records: b.records,
		Skipped: b.skipped,
		Filled:  b.filled,
		Entries: len(b.entries),
	}
}
