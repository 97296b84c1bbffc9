package sfxtree

import "github.com/datatrails/go-datatrails-common/logger"

// ExtensionHook observes every extension performed during construction.
type ExtensionHook func(phase int, rule Rule)

// BuildOptions collects the settings applied by Option values passed to Build.
type BuildOptions struct {
	Log       logger.Logger
	Extension ExtensionHook
}

// Option is a generic option type used for tree construction. Options type
// assert to the target record and ignore records they do not recognise.
type Option func(any)

// WithLogger reports build statistics at debug level.
func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*BuildOptions); ok {
			o.Log = log
		}
	}
}

// WithExtensionHook calls hook after every extension, with the phase and the
// rule that applied.
func WithExtensionHook(hook ExtensionHook) Option {
	return func(opts any) {
		if o, ok := opts.(*BuildOptions); ok {
			o.Extension = hook
		}
	}
}
