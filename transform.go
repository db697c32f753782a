package namestrip

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// applyTransforms runs the case and trim steps in their fixed order. It is a
// pure function of its inputs; the caller has already validated the mask.
func applyTransforms(name string, t transform) string {
	if t.upper {
		// Terminal: Upper never combines with the other case flags.
		return toUpper(name, t.multibyte)
	}

	if t.lower {
		name = toLower(name, t.multibyte)
	}
	if t.upperFirst {
		name = upperFirst(name, t.multibyte)
	}
	if t.trimSuffix {
		name = trimKnownSuffixes(name, t.multibyte)
	}
	return name
}

// cases.Caser values are stateful and not safe for concurrent use, so the
// multibyte paths construct a fresh one per call.

func toUpper(s string, multibyte bool) string {
	if multibyte {
		return cases.Upper(language.Und).String(s)
	}
	return asciiToUpper(s)
}

func toLower(s string, multibyte bool) string {
	if multibyte {
		return cases.Lower(language.Und).String(s)
	}
	return asciiToLower(s)
}

// upperFirst uppercases only the leading character: the first codepoint in
// multibyte mode, the first byte otherwise.
func upperFirst(s string, multibyte bool) string {
	if s == "" {
		return s
	}

	if multibyte {
		r, size := utf8.DecodeRuneInString(s)
		up := unicode.ToUpper(r)
		if up == r {
			return s
		}
		return string(up) + s[size:]
	}

	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}

// asciiToUpper maps a-z at the byte level; everything else, multi-byte
// sequences included, passes through untouched.
func asciiToUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func asciiToLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
