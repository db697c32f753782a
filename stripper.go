package namestrip

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
)

// Stripper extracts base identifiers from qualified names and applies the
// transformations selected by a flag mask. It is safe for concurrent use as
// long as its Cache is; the bundled MemoryCache and the noop store both are.
type Stripper struct {
	cache      Cache
	delimiters string
	logger     *slog.Logger

	probe     func() bool
	probeOnce sync.Once
	multibyte bool
}

// New creates a Stripper with an in-memory cache, the default delimiter set
// and a discard logger.
func New(opts ...Option) *Stripper {
	s := &Stripper{
		cache:      NewMemoryCache(),
		delimiters: defaultDelimiters,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		probe:      func() bool { return true },
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cache == nil {
		s.cache = noopCache{}
	}

	return s
}

// multibyteSupported runs the capability probe at most once and memoizes the
// answer for the Stripper's lifetime.
func (s *Stripper) multibyteSupported() bool {
	s.probeOnce.Do(func() { s.multibyte = s.probe() })
	return s.multibyte
}

// Validate checks the mask for unrecognized bits (ErrUnknownFlags), the
// Upper/Lower exclusivity rule (ErrUpperCaseConflict) and multibyte
// availability (ErrMultibyteUnsupported). The two failure classes are
// distinguishable with errors.Is against ErrInvalidInput and ErrFlagConflict.
func (s *Stripper) Validate(flags Flags) error {
	if bits := flags &^ validFlags; bits != 0 {
		return fmt.Errorf("%w: 0x%x", ErrUnknownFlags, uint32(bits))
	}
	if flags&Upper != 0 && flags&caseFlags != 0 {
		return fmt.Errorf("%w: %s", ErrUpperCaseConflict, flags)
	}
	if flags&Multibyte != 0 && !s.multibyteSupported() {
		return ErrMultibyteUnsupported
	}
	return nil
}

// IsValid reports whether the mask would pass Validate.
func (s *Stripper) IsValid(flags Flags) bool {
	return s.Validate(flags) == nil
}

// Strip returns the base segment of the qualified name with all transforms
// selected by flags applied. Results are memoized under the raw name and the
// raw, non-normalized mask value.
func (s *Stripper) Strip(name string, flags Flags) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	if err := s.Validate(flags); err != nil {
		return "", err
	}

	key := cacheKey(name, flags)
	if v, ok := s.cache.Get(key); ok {
		s.logger.Debug("strip cache hit", slog.String("key", key))
		return v, nil
	}

	result := extractBaseName(name, s.delimiters)
	if flags != None {
		result = applyTransforms(result, flags.decode())
	}

	s.cache.Set(key, result)
	return result, nil
}

// StripType resolves the qualified name of v's runtime type once, then
// behaves exactly like Strip.
func (s *Stripper) StripType(v any, flags Flags) (string, error) {
	name, err := typeName(v)
	if err != nil {
		return "", err
	}
	return s.Strip(name, flags)
}

// StripAll applies Strip to every name, preserving input order. The first
// failing item aborts the batch; there are no partial results.
func (s *Stripper) StripAll(names []string, flags Flags) ([]string, error) {
	results := make([]string, len(names))
	for i, name := range names {
		result, err := s.Strip(name, flags)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		results[i] = result
	}
	return results, nil
}

// ClearCache empties the memoization store. Intended for long-running
// processes and test isolation.
func (s *Stripper) ClearCache() {
	s.cache.Clear()
}

func cacheKey(name string, flags Flags) string {
	return name + "|" + strconv.FormatUint(uint64(flags), 10)
}

// defaultStripper backs the package-level functions with a module-scoped
// instance whose cache lives for the process lifetime.
var defaultStripper = New()

// Strip calls Stripper.Strip on the package-level default instance.
func Strip(name string, flags Flags) (string, error) {
	return defaultStripper.Strip(name, flags)
}

// StripType calls Stripper.StripType on the package-level default instance.
func StripType(v any, flags Flags) (string, error) {
	return defaultStripper.StripType(v, flags)
}

// StripAll calls Stripper.StripAll on the package-level default instance.
func StripAll(names []string, flags Flags) ([]string, error) {
	return defaultStripper.StripAll(names, flags)
}

// ClearCache resets the package-level default instance's cache.
func ClearCache() {
	defaultStripper.ClearCache()
}

// Validate checks the mask against the package-level default instance.
func Validate(flags Flags) error {
	return defaultStripper.Validate(flags)
}

// IsValid reports whether the mask passes Validate on the package-level
// default instance.
func IsValid(flags Flags) bool {
	return defaultStripper.IsValid(flags)
}
