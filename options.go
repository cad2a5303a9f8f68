package slabcache

type options struct {
	recorder Recorder
	logger   *Logger
}

// Option configures cache construction.
//
// Options exist to avoid exploding the constructor surface; a cache built
// with no options records nothing and logs nothing.
type Option func(*options)

func defaultOptions() options {
	return options{
		recorder: NoopRecorder{},
		logger:   NoopLogger(),
	}
}

// WithRecorder wires a usage statistics recorder into the cache. The cache
// reports a hit or a miss on every Get and the post-eviction occupancy on
// every Insert.
//
// If nil is passed, NoopRecorder is used.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r == nil {
			r = NoopRecorder{}
		}
		o.recorder = r
	}
}

// WithLogger sets the logger used for eviction and flush debug events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
