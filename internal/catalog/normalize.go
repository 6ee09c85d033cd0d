package catalog

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9\s]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases a term, strips everything outside [a-z0-9\s], and
// collapses whitespace runs to a single space. Queries and catalog terms must
// go through the same normalization so comparisons line up.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonAlnumRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
