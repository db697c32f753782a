package namestrip

import "log/slog"

// Option is a functional option for configuring a Stripper.
type Option func(*Stripper)

// WithCache replaces the default in-memory memoization store. Passing nil
// disables memoization entirely.
func WithCache(cache Cache) Option {
	return func(s *Stripper) {
		s.cache = cache
	}
}

// WithLogger sets the logger for debug-level diagnostics (cache hits and
// stores). Defaults to a discard handler.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stripper) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDelimiters overrides the characters treated as qualified-name
// separators. Each character of the string is one delimiter; the default set
// is `\/.`. Empty strings are ignored.
func WithDelimiters(delimiters string) Option {
	return func(s *Stripper) {
		if delimiters != "" {
			s.delimiters = delimiters
		}
	}
}

// WithMultibyteProbe replaces the multibyte capability probe. The probe runs
// at most once per Stripper and its result is memoized for the Stripper's
// lifetime. The default probe reports true: the Go runtime always handles
// UTF-8.
func WithMultibyteProbe(probe func() bool) Option {
	return func(s *Stripper) {
		if probe != nil {
			s.probe = probe
		}
	}
}
