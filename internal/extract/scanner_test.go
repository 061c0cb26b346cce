package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanRecords(t *testing.T) {
	records := ScanRecords(sampleTable)
	require.Len(t, records, 8)

	assert.Equal(t, RawRecord{
		Line:    9,
		Country: "Andorra",
		Years:   "2004",
		ISO:     "AD",
		Area:    "CCNNN",
		Street:  "",
		Notes:   "Each parish has its own post code.",
	}, records[0])

	peru := records[1]
	assert.Equal(t, "Peru", peru.Country)
	assert.Equal(t, "", peru.Years)
	assert.Equal(t, "NNNNN, CC NNNN", peru.Area)
	assert.Equal(t, "- no codes -", peru.Street)
	assert.Equal(t, "", peru.Notes)

	// Row ended after the ISO cell.
	japan := records[2]
	assert.Equal(t, "Japan", japan.Country)
	assert.Equal(t, "1968", japan.Years)
	assert.Equal(t, "JP", japan.ISO)
	assert.Empty(t, japan.Area)
	assert.Empty(t, japan.Street)
	assert.Empty(t, japan.Notes)

	canada := records[3]
	assert.Equal(t, "ANA NAN", canada.Area)
	assert.Equal(t, "The letters D, F, I, O, Q, and U are not used. Introduced in Ottawa.", canada.Notes)

	nowhere := records[4]
	assert.Equal(t, "Nowhere", nowhere.Country)
	assert.Empty(t, nowhere.ISO)

	assert.Equal(t, "Andorra la Vella", records[5].Country)
	assert.Equal(t, "CC NNN", records[5].Street)

	germany := records[6]
	assert.Equal(t, RawRecord{
		Line:    44,
		Country: "Germany",
		Years:   "1993",
		ISO:     "DE",
		Area:    "NNNNN",
		Notes:   "Postleitzahl.",
	}, germany)

	// Pending row at end of input is completed on Close.
	assert.Equal(t, "Ignored", records[7].Country)
}

func TestScannerHeaderRowIsDropped(t *testing.T) {
	records := ScanRecords("{|\n|-\n! Country\n! ISO\n|}")
	assert.Empty(t, records)
}

func TestScannerConsecutiveBoundaries(t *testing.T) {
	records := ScanRecords("|-\n|-.\n|-\n| [[Postal codes in Peru|Peru]]\n| 1990\n| PE\n|}")
	require.Len(t, records, 1)
	assert.Equal(t, "PE", records[0].ISO)
}

func TestScannerExtraCellsIgnored(t *testing.T) {
	records := ScanRecords("|-\n| A\n| B\n| XX\n| NNN\n| NNNN\n| notes\n| extra\n|}")
	require.Len(t, records, 1)
	assert.Equal(t, "notes", records[0].Notes)
}

func TestScannerStates(t *testing.T) {
	s := NewScanner()
	assert.Equal(t, stateIdle, s.state)

	s.Feed("| ignored while idle")
	assert.Equal(t, stateIdle, s.state)

	steps := []struct {
		line string
		want state
	}{
		{"|-", stateExpectCountry},
		{"| [[Postal codes in Peru|Peru]]", stateExpectYears},
		{"| 1990", stateExpectISO},
		{"| [[ISO 3166-1:PE|PE]]", stateExpectArea},
		{"| NNNNN", stateExpectStreet},
		{"|", stateExpectNotes},
		{"| notes", stateRecordComplete},
		{"|-", stateExpectCountry},
		{"|}", stateIdle},
	}
	for _, step := range steps {
		s.Feed(step.line)
		assert.Equal(t, step.want, s.state, "after %q got %s", step.line, s.state)
	}

	records := s.Close()
	require.Len(t, records, 1)
	assert.Equal(t, "PE", records[0].ISO)
}

func TestLinkText(t *testing.T) {
	tests := []struct {
		cell string
		want string
	}{
		{"[[Postal codes in Andorra|Andorra]]", "Andorra"},
		{"[[List of postal codes in Bangladesh|Bangladesh]]", "Bangladesh"},
		{"[[Bangladesh]]", "Bangladesh"},
		{"{{flagicon|FR}} France", "France"},
		{"[[ISO 3166-1:AD|AD]]", "AD"},
		{"AD", "AD"},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, linkText(tc.cell), "linkText(%q)", tc.cell)
	}
}

func TestParseCountryNormalizes(t *testing.T) {
	decomposed := "[[Postal codes in A\u030aland|A\u030aland Islands]]"
	assert.Equal(t, "\u00c5land Islands", parseCountry(decomposed))
}
