// Package namestrip extracts the short identifier from fully-qualified,
// delimiter-separated names and applies optional case and suffix transforms.
//
// The package turns names like "App\Entity\UserDto", "pkg/service.OrderQuery"
// or a value's runtime type name into their base identifier, optionally
// lowercased, uppercased, first-letter-capitalized, or stripped of common
// architectural suffixes ("Dto", "Factory", "Handler", ...). Every operation
// is pure, synchronous and in-memory; results are memoized per input and
// flag mask.
//
// # Flags
//
// Transformations are selected with a bitmask of independent flags:
//
//	out, _ := namestrip.Strip(`App\Entity\User`, namestrip.None)       // "User"
//	out, _ = namestrip.Strip(`App\Entity\User`, namestrip.Lower)       // "user"
//	out, _ = namestrip.Strip(`App\Entity\User`, namestrip.Upper)       // "USER"
//	out, _ = namestrip.Strip(`App\Entity\UserDto`, namestrip.TrimSuffix) // "User"
//
// Flags compose; Lower|UpperFirst lowercases the whole name and then
// capitalizes its first character, and Normalize collapses that pair into the
// LowerUpperFirst shorthand:
//
//	namestrip.Normalize(namestrip.Lower|namestrip.UpperFirst) == namestrip.LowerUpperFirst
//
// Upper is exclusive with the other case flags; combining them fails with
// ErrUpperCaseConflict. Multibyte switches all string operations from raw
// bytes to codepoints so multi-byte characters are never split:
//
//	out, _ = namestrip.Strip(`App\Entity\MyÜserFactoryEnum`,
//		namestrip.TrimSuffix|namestrip.Multibyte) // "MyÜser"
//
// # Suffix trimming
//
// TrimSuffix repeatedly strips one known trailing suffix at a time,
// case-insensitively, until none match. The suffix list is fixed and scanned
// in declaration order on every pass, so multi-suffix tails unwind fully:
//
//	out, _ = namestrip.Strip(`App\Entity\UserHandlerDtoEvent`, namestrip.TrimSuffix) // "User"
//
// The casing of the surviving prefix is never altered.
//
// # Typed values
//
// StripType resolves a value's runtime type name and feeds it through the
// same pipeline:
//
//	type Customer struct{}
//	out, _ := namestrip.StripType(&Customer{}, namestrip.Lower) // "customer"
//
// # Instances, caching and configuration
//
// The package-level functions operate on a default instance with a
// process-lifetime in-memory cache; ClearCache resets it. Hosts that want
// explicit ownership construct their own:
//
//	s := namestrip.New(
//		namestrip.WithCache(namestrip.NewMemoryCache()),
//		namestrip.WithLogger(logger),
//	)
//	out, err := s.Strip(`App\Model\Customer`, namestrip.TrimSuffix)
//
// Any Cache implementation can be injected; integration/rediscache provides a
// Redis-backed one for sharing the memo store across processes. Environment
// configuration follows the usual pattern:
//
//	cfg, err := namestrip.LoadConfig() // NAMESTRIP_* variables
//	s, err := namestrip.NewFromConfig(cfg)
//
// # Errors
//
// Failures carry one of two classes, checkable with errors.Is: ErrInvalidInput
// for malformed data (empty name, unknown flag bits) and ErrFlagConflict for
// incompatible configuration (Upper with Lower, Multibyte without runtime
// support). Specific sentinels (ErrEmptyName, ErrUnknownFlags, ...) wrap
// their class, so both levels match. There are no silent fallbacks: Multibyte
// is never downgraded to byte mode.
package namestrip
