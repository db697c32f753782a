package namestrip

import (
	"fmt"
	"strings"
)

// Flags is a bitmask of independent transformation options. Combine flags
// with the bitwise OR operator; Validate rejects combinations that make no
// sense together.
type Flags uint32

const (
	// None applies no transformation; the base name is returned as extracted.
	None Flags = 0

	// Lower lowercases the entire base name.
	Lower Flags = 1 << 0

	// UpperFirst uppercases the first character and leaves the rest of the
	// name as it stands at that point in the pipeline.
	UpperFirst Flags = 1 << 1

	// Upper uppercases the entire base name. It is terminal and mutually
	// exclusive with Lower, UpperFirst and LowerUpperFirst.
	Upper Flags = 1 << 2

	// Multibyte switches every string operation to codepoint-aware mode so
	// multi-byte characters are never split or half-cased. Without it all
	// operations work on raw bytes with ASCII-only case mapping.
	Multibyte Flags = 1 << 3

	// TrimSuffix repeatedly strips known trailing suffixes ("Dto", "Factory",
	// "Event", ...) until none match.
	TrimSuffix Flags = 1 << 4

	// LowerUpperFirst lowercases the base name and then uppercases its first
	// character. It is shorthand for Lower|UpperFirst carried on its own bit,
	// so the raw mask stays distinguishable at the cache boundary.
	LowerUpperFirst Flags = 1 << 5
)

// validFlags is the full recognized bit set; anything outside it is rejected.
const validFlags = Lower | UpperFirst | Upper | Multibyte | TrimSuffix | LowerUpperFirst

// caseFlags are the bits Upper conflicts with.
const caseFlags = Lower | UpperFirst | LowerUpperFirst

// flagOrder drives String, ParseFlags and ListFlags with a stable ordering.
var flagOrder = []struct {
	name string
	flag Flags
}{
	{"Lower", Lower},
	{"UpperFirst", UpperFirst},
	{"Upper", Upper},
	{"Multibyte", Multibyte},
	{"TrimSuffix", TrimSuffix},
	{"LowerUpperFirst", LowerUpperFirst},
}

// String renders the mask as pipe-separated flag names, e.g. "Lower|TrimSuffix".
// Unrecognized bits are rendered in hex so invalid masks stay diagnosable.
func (f Flags) String() string {
	if f == None {
		return "None"
	}

	parts := make([]string, 0, len(flagOrder))
	for _, e := range flagOrder {
		if f&e.flag != 0 {
			parts = append(parts, e.name)
		}
	}
	if rest := f &^ validFlags; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}

	return strings.Join(parts, "|")
}

// ListFlags returns every recognized flag name mapped to its bit value,
// the LowerUpperFirst composite included. The map is a fresh copy on each
// call, so callers may modify it freely.
func ListFlags() map[string]Flags {
	m := make(map[string]Flags, len(flagOrder)+1)
	m["None"] = None
	for _, e := range flagOrder {
		m[e.name] = e.flag
	}
	return m
}

// ParseFlags converts a pipe-separated list of flag names back into a mask.
// Names match the constants ("Lower|TrimSuffix"); "None" and the empty
// string parse to None. Unknown names fail with ErrUnknownFlags.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		if part == "" || part == "None" {
			continue
		}

		matched := false
		for _, e := range flagOrder {
			if part == e.name {
				f |= e.flag
				matched = true
				break
			}
		}
		if !matched {
			return None, fmt.Errorf("%w: %q", ErrUnknownFlags, part)
		}
	}
	return f, nil
}

// Normalize canonicalizes redundant combinations: Lower|UpperFirst collapses
// into the LowerUpperFirst composite bit. All other masks pass through
// unchanged. Normalize is idempotent and performs no validation.
func Normalize(f Flags) Flags {
	if f&Lower != 0 && f&UpperFirst != 0 {
		f = f&^(Lower|UpperFirst) | LowerUpperFirst
	}
	return f
}

// transform is the decoded, named-field form of a mask; business logic works
// on it instead of twiddling bits.
type transform struct {
	lower      bool
	upperFirst bool
	upper      bool
	multibyte  bool
	trimSuffix bool
}

func (f Flags) decode() transform {
	return transform{
		lower:      f&Lower != 0 || f&LowerUpperFirst != 0,
		upperFirst: f&UpperFirst != 0 || f&LowerUpperFirst != 0,
		upper:      f&Upper != 0,
		multibyte:  f&Multibyte != 0,
		trimSuffix: f&TrimSuffix != 0,
	}
}
