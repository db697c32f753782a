package namestrip

import (
	"errors"
	"fmt"
)

// Error classes group failures by what the caller did wrong. Check them with
// errors.Is when only the category matters (bad data vs. incompatible
// configuration); the specific sentinels below wrap their class, so both
// levels match.
var (
	// ErrInvalidInput covers malformed caller data: empty qualified names,
	// unrecognized flag bits, values without a resolvable type name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFlagConflict covers flag combinations that are well-formed but
	// mutually incompatible with each other or with the runtime.
	ErrFlagConflict = errors.New("conflicting flags")
)

var (
	// ErrEmptyName is returned when the qualified name is the empty string.
	ErrEmptyName = fmt.Errorf("%w: empty qualified name", ErrInvalidInput)

	// ErrUnknownFlags is returned when the mask carries bits outside the
	// recognized flag set.
	ErrUnknownFlags = fmt.Errorf("%w: unrecognized flag bits", ErrInvalidInput)

	// ErrUnresolvableType is returned by StripType when the value's runtime
	// type has no name (nil, unnamed structs, funcs, channels and the like).
	ErrUnresolvableType = fmt.Errorf("%w: value has no resolvable type name", ErrInvalidInput)

	// ErrUpperCaseConflict is returned when Upper is combined with Lower,
	// UpperFirst or LowerUpperFirst.
	ErrUpperCaseConflict = fmt.Errorf("%w: Upper cannot combine with Lower or UpperFirst", ErrFlagConflict)

	// ErrMultibyteUnsupported is returned when Multibyte is requested but the
	// capability probe reports no multibyte text support.
	ErrMultibyteUnsupported = fmt.Errorf("%w: multibyte text support is not available", ErrFlagConflict)
)

// ErrInvalidConfig is returned by NewFromConfig for unusable configuration.
var ErrInvalidConfig = errors.New("invalid stripper configuration")
