// Package extract turns the wikitext "List of postal codes" table into format
// table entries.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// RawRecord is one table row as found in the export. Fields missing from a
// truncated row are left empty.
type RawRecord struct {
	Line    int
	Country string
	Years   string
	ISO     string
	Area    string
	Street  string
	Notes   string
}

var (
	linkRE     = regexp.MustCompile(`\[\[([^\]|]*)(?:\|([^\]]*))?\]\]`)
	templateRE = regexp.MustCompile(`\{\{[^{}]*\}\}`)
)

// linkText resolves the first wikilink in a cell to its label, or its target
// when it has no label. Cells without a link are returned with templates removed.
func linkText(cell string) string {
	m := linkRE.FindStringSubmatch(cell)
	if m == nil {
		return strings.TrimSpace(templateRE.ReplaceAllString(cell, ""))
	}
	if m[2] != "" {
		return strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(m[1])
}

func parseCountry(cell string) string {
	return norm.NFC.String(linkText(cell))
}

func parseISO(cell string) string {
	return linkText(cell)
}
