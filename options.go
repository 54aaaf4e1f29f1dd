package xpsdoc

import "github.com/rs/zerolog"

// Option configures a load.
type Option func(*options)

// options holds configuration for loading a package.
type options struct {
	logger      zerolog.Logger
	caseFolding bool
	thumbnail   bool
}

// defaultOptions returns the default load options.
func defaultOptions() options {
	return options{
		logger:      zerolog.Nop(),
		caseFolding: false,
		thumbnail:   true,
	}
}

// WithLogger sets the logger used while loading. The default discards all
// output.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCaseFolding lets part lookups fall back to a case-insensitive match.
// Some producers write part references whose case differs from the
// container entry names.
func WithCaseFolding() Option {
	return func(o *options) {
		o.caseFolding = true
	}
}

// WithoutThumbnail skips reading the package thumbnail.
func WithoutThumbnail() Option {
	return func(o *options) {
		o.thumbnail = false
	}
}
