package namestrip

import (
	"strings"
	"unicode"
)

// trimmableSuffixes is scanned in declaration order on every pass; the first
// suffix whose lowercase form matches the tail wins, even when a longer entry
// further down would also match. The list is read-only after initialization.
var trimmableSuffixes = []string{
	"interface",
	"trait",
	"abstract",
	"class",
	"impl",
	"entity",
	"dto",
	"vo",
	"model",
	"service",
	"controller",
	"factory",
	"repository",
	"event",
	"listener",
	"subscriber",
	"command",
	"query",
	"enum",
	"handler",
}

// trimKnownSuffixes strips trailing known suffixes one at a time until none
// match, case-insensitively, without touching the casing of what survives.
// A name made up entirely of known suffixes trims down to the empty string.
func trimKnownSuffixes(name string, multibyte bool) string {
	if multibyte {
		return trimSuffixRunes([]rune(name))
	}
	return trimSuffixBytes(name)
}

func trimSuffixBytes(name string) string {
	for {
		lower := asciiToLower(name)

		matched := false
		for _, suffix := range trimmableSuffixes {
			if strings.HasSuffix(lower, suffix) {
				name = name[:len(name)-len(suffix)]
				matched = true
				break
			}
		}
		if !matched {
			return name
		}
	}
}

func trimSuffixRunes(name []rune) string {
	for {
		matched := false
		for _, suffix := range trimmableSuffixes {
			// Suffixes are ASCII, so their byte length equals their rune count.
			if runesEndWithFold(name, suffix) {
				name = name[:len(name)-len(suffix)]
				matched = true
				break
			}
		}
		if !matched {
			return string(name)
		}
	}
}

// runesEndWithFold reports whether name ends with the ASCII suffix, comparing
// each trailing rune lowercased in place. Per-rune unicode.ToLower keeps
// positions aligned with the original runes, which full-string case mapping
// does not guarantee.
func runesEndWithFold(name []rune, suffix string) bool {
	if len(name) < len(suffix) {
		return false
	}

	tail := name[len(name)-len(suffix):]
	for i := range tail {
		if unicode.ToLower(tail[i]) != rune(suffix[i]) {
			return false
		}
	}
	return true
}
