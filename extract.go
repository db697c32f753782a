package namestrip

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// defaultDelimiters covers backslash-namespaced, slash-pathed and dotted
// qualified names.
const defaultDelimiters = `\/.`

// extractBaseName returns the segment after the last occurrence of any
// delimiter, or the input unchanged when no delimiter is present. UTF-8 is
// self-synchronizing, so the scan is correct regardless of the Multibyte
// flag, and non-ASCII delimiters are skipped by their full width.
func extractBaseName(name, delimiters string) string {
	if i := strings.LastIndexAny(name, delimiters); i >= 0 {
		_, size := utf8.DecodeRuneInString(name[i:])
		return name[i+size:]
	}
	return name
}

// typeName resolves the qualified name of v's runtime type, dereferencing
// pointers first. Named types from a package yield "pkg/path.Name"; unnamed
// types have no qualified name and fail with ErrUnresolvableType.
func typeName(v any) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%w (nil)", ErrUnresolvableType)
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return "", fmt.Errorf("%w (%s)", ErrUnresolvableType, t.Kind())
	}

	if pkg := t.PkgPath(); pkg != "" {
		return pkg + "." + t.Name(), nil
	}
	return t.Name(), nil
}
