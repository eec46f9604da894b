package genseq

import "math"

// DefaultPreviewLimit is the number of elements shown by String and Describe.
const DefaultPreviewLimit = 10

// Option configures a Seq.
type Option func(*config)

type config struct {
	previewLimit int
}

// WithPreviewLimit sets the number of elements shown by String and Describe.
// Values less than 1 are ignored, and values of math.MaxInt are reduced by one.
func WithPreviewLimit(n int) Option {
	return func(c *config) {
		if n < 1 {
			return
		}

		// one more element than the limit is pulled to detect truncation
		c.previewLimit = min(n, math.MaxInt-1)
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		previewLimit: DefaultPreviewLimit,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
