package postalcode

import (
	"regexp"
	"strings"
	"sync"
)

type patternKey struct {
	template     string
	ignoreSpaces bool
}

// patternCache is a read-through cache of compiled templates. Compilation is
// pure, so two goroutines racing on the same key just store equal values.
type patternCache struct {
	mu       sync.RWMutex
	patterns map[patternKey]*regexp.Regexp
}

func newPatternCache() *patternCache {
	return &patternCache{
		patterns: make(map[patternKey]*regexp.Regexp),
	}
}

// Get returns the compiled pattern for template, compiling it on first use.
func (c *patternCache) Get(template string, ignoreSpaces bool) *regexp.Regexp {
	key := patternKey{template: template, ignoreSpaces: ignoreSpaces}

	c.mu.RLock()
	re, ok := c.patterns[key]
	c.mu.RUnlock()
	if ok {
		return re
	}

	re = compilePattern(template, ignoreSpaces)

	c.mu.Lock()
	c.patterns[key] = re
	c.mu.Unlock()

	return re
}

// Size returns the number of compiled patterns held.
func (c *patternCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.patterns)
}

// patternSource translates a template into an anchored regular expression.
func patternSource(template string, ignoreSpaces bool) string {
	var b strings.Builder
	b.WriteByte('^')
	for _, r := range template {
		switch {
		case r == '#':
			b.WriteString("[0-9]")
		case r == '@':
			b.WriteString("[a-zA-Z]")
		case r == ' ' && ignoreSpaces:
			b.WriteString(" ?")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteByte('$')
	return b.String()
}

// compilePattern never fails: every literal is quoted.
func compilePattern(template string, ignoreSpaces bool) *regexp.Regexp {
	return regexp.MustCompile(patternSource(template, ignoreSpaces))
}
