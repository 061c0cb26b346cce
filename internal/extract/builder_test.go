package extract

import (
	"testing"

	"github.com/hightemp/zipzap/internal/countries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderMergesDuplicates(t *testing.T) {
	b := NewBuilder()
	defer b.Close()

	assert.True(t, b.Add(RawRecord{Country: "Andorra", ISO: "AD", Area: "CCNNN", Notes: "First."}))
	assert.True(t, b.Add(RawRecord{Country: "Andorra la Vella", ISO: "AD", Street: "CC NNN", Notes: "Second."}))
	assert.True(t, b.Add(RawRecord{Country: "Andorra", ISO: "AD"}))

	entries := b.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{
		Code:    "AD",
		Country: "Andorra",
		Formats: []string{"AD###", "AD ###"},
		Notes:   "First. Second.",
	}, entries[0])
}

func TestBuilderAreaBeforeStreet(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	b.Add(RawRecord{Country: "Bermuda", ISO: "BM", Area: "AA NN", Street: "AA AA"})

	entries := b.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"@@ ##", "@@ @@"}, entries[0].Formats)
}

func TestBuilderSkipsRecordsWithoutISO(t *testing.T) {
	b := NewBuilder()
	defer b.Close()

	assert.False(t, b.Add(RawRecord{Country: "Nowhere", Area: "NNN"}))
	assert.Empty(t, b.Entries())
	assert.Equal(t, Stats{Records: 1, Skipped: 1}, b.Stats())
}

func TestBuilderComplete(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	b.Add(RawRecord{ISO: "DE", Area: "NNNNN"})
	b.Add(RawRecord{Country: "Peru", ISO: "PE", Area: "NNNNN"})

	added := b.Complete([]countries.Country{
		{Code: "AE", Name: "United Arab Emirates"},
		{Code: "DE", Name: "Germany"},
		{Code: "PE", Name: "Peru (canonical)"},
		{Code: "AE", Name: "Duplicate"},
		{Code: ""},
	})
	assert.Equal(t, 1, added)

	entries := b.Entries()
	require.Len(t, entries, 3)

	assert.Equal(t, Entry{Code: "AE", Country: "United Arab Emirates", Formats: []string{}}, entries[0])
	assert.Equal(t, "Germany", entries[1].Country)
	assert.Equal(t, []string{"#####"}, entries[1].Formats)
	assert.Equal(t, "Peru", entries[2].Country)

	assert.Equal(t, Stats{Records: 2, Filled: 1, Entries: 3}, b.Stats())
}

func TestBuilderEntriesSortedAndCopied(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	b.Add(RawRecord{ISO: "ZW"})
	b.Add(RawRecord{ISO: "AD", Area: "CCNNN"})
	b.Add(RawRecord{ISO: "MX", Area: "NNNNN"})

	entries := b.Entries()
	codes := []string{entries[0].Code, entries[1].Code, entries[2].Code}
	assert.Equal(t, []string{"AD", "MX", "ZW"}, codes)
	assert.NotNil(t, entries[2].Formats)

	entries[0].Formats[0] = "changed"
	assert.Equal(t, "AD###", b.Entries()[0].Formats[0])
}

func TestBuilderDropsRepeatedFormats(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	b.Add(RawRecord{Country: "Andorra", ISO: "AD", Area: "CCNNN", Street: "CCNNN"})
	b.Add(RawRecord{Country: "Andorra", ISO: "AD", Area: "CCNNN, CC NNN", Street: "CC NNN"})

	entries := b.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, []string{"AD###", "AD ###"}, entries[0].Formats)
}

func TestBuilderCodesCaseInsensitive(t *testing.T) {
	b := NewBuilder()
	defer b.Close()
	b.Add(RawRecord{Country: "Andorra", ISO: "ad", Area: "CCNNN"})
	b.Add(RawRecord{ISO: "AD", Street: "CC NNN"})

	added := b.Complete([]countries.Country{{Code: "ad", Name: "Andorra"}, {Code: "fr", Name: "France"}})
	assert.Equal(t, 1, added)

	entries := b.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Code: "AD", Country: "Andorra", Formats: []string{"AD###", "AD ###"}}, entries[0])
	assert.Equal(t, "FR", entries[1].Code)
}
