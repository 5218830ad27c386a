package graphml

import (
	"github.com/charmbracelet/log"
)

// Options configures the readers.
//
// Fields:
//   - Logger — destination for non-fatal warnings (unrecognized elements,
//     skipped key declarations). Never nil after DefaultOptions.
type Options struct {
	Logger *log.Logger
}

// DefaultOptions returns the options used when none are supplied:
// warnings go to the process-wide default logger.
func DefaultOptions() Options {
	return Options{Logger: log.Default()}
}

// Option mutates Options before a read begins.
type Option func(*Options)

// WithLogger routes non-fatal warnings to l. Pass a logger writing to
// io.Discard to silence them.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// applyOptions folds opts over the defaults.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}

	return o
}
