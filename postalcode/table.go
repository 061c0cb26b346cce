package postalcode

import (
	"sort"
	"strings"
)

// countryPlaceholder stands for the country's own code inside a template.
const countryPlaceholder = "CC"

// table is the immutable country lookup shared by every Validator.
type table struct {
	formats map[string][]string
	names   map[string]NameInfo
	codes   []string
}

var defaultTable = newTable(formatData, displayNames)

// newTable copies the raw data and expands the country placeholder so every
// template is concrete for its country.
func newTable(formats map[string][]string, names map[string]NameInfo) *table {
	t := &table{
		formats: make(map[string][]string, len(formats)),
		names:   make(map[string]NameInfo, len(names)),
		codes:   make([]string, 0, len(formats)),
	}

	for code, templates := range formats {
		expanded := make([]string, len(templates))
		for i, tpl := range templates {
			expanded[i] = expandPlaceholder(tpl, code)
		}
		t.formats[code] = expanded
		t.codes = append(t.codes, code)
	}
	sort.Strings(t.codes)

	for code, name := range names {
		t.names[code] = name
	}

	return t
}

func expandPlaceholder(template, code string) string {
	return strings.ReplaceAll(template, countryPlaceholder, code)
}

func (t *table) lookup(code string) ([]string, bool) {
	templates, ok := t.formats[code]
	return templates, ok
}
