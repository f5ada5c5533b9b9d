package join

const defaultAveragePoints = 50

type config struct {
	averagePoints int
	scale         bool
	factors       []float64
}

func defaultConfig() config {
	return config{
		averagePoints: defaultAveragePoints,
		scale:         true,
	}
}

// Option mutates the join configuration.
type Option func(*config)

// WithAveragePoints sets the width in samples of the window around the
// join point over which the scaling means are taken (default 50).
func WithAveragePoints(n int) Option {
	return func(c *config) {
		c.averagePoints = n
	}
}

// WithoutScaling disables intensity scaling; signals are concatenated at
// the join point as acquired.
func WithoutScaling() Option {
	return func(c *config) {
		c.scale = false
	}
}

// WithScaleFactors supplies explicit scaling factors instead of computing
// them from the overlap windows. One factor per adjacent pair is
// required, each applied to the incoming signal relative to the running
// merged result.
func WithScaleFactors(factors ...float64) Option {
	copied := append([]float64(nil), factors...)

	return func(c *config) {
		c.factors = copied
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
