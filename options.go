package valuepath

import "log/slog"

// Options provides per-call configuration for resolution and coercion.
// The zero value is the default: case-insensitive matching, no diagnostics.
type Options struct {
	// CaseSensitive disables the case-insensitive fallback applied to
	// member names, mapping keys and enumeration names.
	CaseSensitive bool

	// Logger, when set, receives debug-level records for failed
	// resolutions. Resolution itself never logs by default.
	Logger *slog.Logger
}

// Clone creates a copy of Options
func (o *Options) Clone() *Options {
	if o == nil {
		return nil
	}
	return &Options{
		CaseSensitive: o.CaseSensitive,
		Logger:        o.Logger,
	}
}

// DefaultOptions returns the default per-call configuration
func DefaultOptions() *Options {
	return &Options{}
}

var defaultOptions = &Options{}

// resolveOptions picks the effective options for a call: the last non-nil
// entry wins, matching the variadic convention of the public API.
func resolveOptions(opts []*Options) *Options {
	for i := len(opts) - 1; i >= 0; i-- {
		if opts[i] != nil {
			return opts[i]
		}
	}
	return defaultOptions
}
