package matcher

import (
	"regexp"
	"strings"
)

// compileGlob translates a single glob pattern into a case-insensitive
// regexp: `*` matches any run of characters, `?` matches exactly one.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	escaped := regexp.QuoteMeta(pattern)
	escaped = strings.ReplaceAll(escaped, `\*`, `.*`)
	escaped = strings.ReplaceAll(escaped, `\?`, `.`)

	return regexp.Compile("(?i)^" + escaped + "$")
}

// MatchGlob reports whether value matches any of the comma-separated glob
// patterns in patternList. Patterns that fail to compile are ignored rather
// than failing the whole call.
func MatchGlob(value, patternList string) bool {
	if patternList == "" {
		return true
	}
	if value == "" {
		return false
	}

	for _, p := range strings.Split(patternList, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		re, err := compileGlob(p)
		if err != nil {
			continue
		}

		if re.MatchString(value) {
			return true
		}
	}

	return false
}
