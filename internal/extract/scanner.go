package extract

import (
	"bufio"
	"strings"
)

type state int

const (
	stateIdle state = iota
	stateExpectCountry
	stateExpectYears
	stateExpectISO
	stateExpectArea
	stateExpectStreet
	stateExpectNotes
	stateRecordComplete
)

var stateNames = map[state]string{
	stateIdle:           "idle",
	stateExpectCountry:  "expect-country",
	stateExpectYears:    "expect-years",
	stateExpectISO:      "expect-iso",
	stateExpectArea:     "expect-area",
	stateExpectStreet:   "expect-street",
	stateExpectNotes:    "expect-notes",
	stateRecordComplete: "record-complete",
}

func (s state) String() string {
	return stateNames[s]
}

// Scanner reads table rows positionally: after a row boundary it expects the
// country, years, ISO, area, street and notes cells in that order. A new
// boundary or the table end completes the pending row, early if cells are
// still missing. Cells past the notes are ignored.
type Scanner struct {
	state   state
	line    int
	current RawRecord
	last    *string
	records []RawRecord
}

// NewScanner returns a scanner waiting for the first row boundary.
func NewScanner() *Scanner {
	return &Scanner{state: stateIdle}
}

// isRowBoundary reports whether a trimmed line starts a new table row.
func isRowBoundary(trimmed string) bool {
	return trimmed == "|-" || trimmed == "|-."
}

func isTableEnd(trimmed string) bool {
	return strings.HasPrefix(trimmed, "|}")
}

// Feed advances the scanner by one line of wikitext.
func (s *Scanner) Feed(line string) {
	s.line++

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	switch {
	case isRowBoundary(trimmed):
		s.complete()
		s.current = RawRecord{Line: s.line}
		s.state = stateExpectCountry
		return
	case isTableEnd(trimmed):
		s.complete()
		return
	case s.state == stateIdle:
		return
	}

	if !strings.HasPrefix(trimmed, "|") {
		s.continueCell(trimmed)
		return
	}

	for _, cell := range splitInlineCells(trimmed) {
		s.cell(cell)
	}
}

// cell stores one cell value according to the current state.
func (s *Scanner) cell(cell string) {
	switch s.state {
	case stateExpectCountry:
		s.current.Country = parseCountry(cell)
		s.last = &s.current.Country
		s.state = stateExpectYears
	case stateExpectYears:
		s.current.Years = cell
		s.last = &s.current.Years
		s.state = stateExpectISO
	case stateExpectISO:
		s.current.ISO = parseISO(cell)
		s.last = &s.current.ISO
		s.state = stateExpectArea
	case stateExpectArea:
		s.current.Area = cell
		s.last = &s.current.Area
		s.state = stateExpectStreet
	case stateExpectStreet:
		s.current.Street = cell
		s.last = &s.current.Street
		s.state = stateExpectNotes
	case stateExpectNotes:
		s.current.Notes = cell
		s.last = &s.current.Notes
		s.state = stateRecordComplete
	}
}

// continueCell handles lines that are not cells: header rows drop the pending
// record, anything else continues the previous cell.
func (s *Scanner) continueCell(trimmed string) {
	if strings.HasPrefix(trimmed, "!") {
		if s.state == stateExpectCountry {
			s.state = stateIdle
		}
		return
	}
	if s.last != nil && s.state != stateExpectCountry {
		*s.last = strings.TrimSpace(*s.last + " " + trimmed)
	}
}

// complete emits the pending record if any cell was read and returns to idle.
func (s *Scanner) complete() {
	if s.state != stateIdle && s.state != stateExpectCountry {
		s.records = append(s.records, s.current)
	}
	s.current = RawRecord{}
	s.last = nil
	s.state = stateIdle
}

// Close completes any pending record and returns everything scanned.
func (s *Scanner) Close() []RawRecord {
	s.complete()
	return s.records
}

// splitInlineCells splits "| a || b" into its cell values.
func splitInlineCells(trimmed string) []string {
	parts := strings.Split(strings.TrimPrefix(trimmed, "|"), "||")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// ScanRecords scans all rows of a wikitext table.
func ScanRecords(text string) []RawRecord {
	s := NewScanner()
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		s.Feed(sc.Text())
	}
	return s.Close()
}
