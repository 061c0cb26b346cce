package postalcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternSource(t *testing.T) {
	tests := []struct {
		template     string
		ignoreSpaces bool
		want         string
	}{
		{"#####", false, "^[0-9][0-9][0-9][0-9][0-9]$"},
		{"@# #@@", false, "^[a-zA-Z][0-9] [0-9][a-zA-Z][a-zA-Z]$"},
		{"@# #@@", true, "^[a-zA-Z][0-9] ?[0-9][a-zA-Z][a-zA-Z]$"},
		{"###-####", true, "^[0-9][0-9][0-9]-[0-9][0-9][0-9][0-9]$"},
		{"#.#", false, `^[0-9]\.[0-9]$`},
		{"AD###", false, "^AD[0-9][0-9][0-9]$"},
		{"", false, "^$"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, patternSource(tc.template, tc.ignoreSpaces), "template %q", tc.template)
	}
}

func TestCompilePatternLiteralsAreQuoted(t *testing.T) {
	re := compilePattern("#.#", false)

	assert.True(t, re.MatchString("1.2"))
	assert.False(t, re.MatchString("1x2"))
}

func TestPatternCache(t *testing.T) {
	c := newPatternCache()

	a := c.Get("### ##", false)
	b := c.Get("### ##", false)
	assert.Same(t, a, b)
	assert.Equal(t, 1, c.Size())

	loose := c.Get("### ##", true)
	assert.NotSame(t, a, loose)
	assert.Equal(t, 2, c.Size())

	assert.False(t, a.MatchString("12345"))
	assert.True(t, loose.MatchString("12345"))
}

func TestNewTableExpandsPlaceholder(t *testing.T) {
	tbl := newTable(map[string][]string{
		"QQ": {"CC-###", "###"},
		"ZZ": {},
	}, nil)

	got, ok := tbl.lookup("QQ")
	assert.True(t, ok)
	assert.Equal(t, []string{"QQ-###", "###"}, got)

	got, ok = tbl.lookup("ZZ")
	assert.True(t, ok)
	assert.Empty(t, got)

	assert.Equal(t, []string{"QQ", "ZZ"}, tbl.codes)
}
