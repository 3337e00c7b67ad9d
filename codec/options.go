package codec

import (
	"runtime"

	"github.com/hupe1980/bitarray"
)

type options struct {
	compression Compression
	logger      *bitarray.Logger
	concurrency int
}

// Option configures the Binary codec and the batch helpers.
type Option func(*options)

// WithCompression sets the payload compression of NewBinary.
// Default: CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger sets the logger for encode, decode and batch events.
// If nil is passed, logging is disabled.
func WithLogger(logger *bitarray.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = bitarray.NoopLogger()
		}
		o.logger = logger
	}
}

// WithConcurrency bounds the goroutines MarshalAll and UnmarshalAll run at
// once. Values below 1 select GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

func applyOptions(opts []Option) options {
	o := options{
		compression: CompressionNone,
		logger:      bitarray.NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
