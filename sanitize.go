package pdf2img

import (
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	unsafeChars    = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// SanitizeName maps an arbitrary string to a token safe for use as a file or
// directory name: surrounding whitespace is trimmed, inner whitespace runs
// collapse to a single underscore, and everything outside [A-Za-z0-9._-] is
// stripped. Returns fallback when the input is empty or nothing survives.
//
// The mapping is deterministic and idempotent.
func SanitizeName(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	s = whitespaceRuns.ReplaceAllString(s, "_")
	s = unsafeChars.ReplaceAllString(s, "")
	if s == "" {
		return fallback
	}
	return s
}
