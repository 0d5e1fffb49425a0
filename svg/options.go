package svg

import "runtime"

const (
	// DefaultTolerance is the default maximum deviation, in document units,
	// between a curve and the polyline approximating it
	DefaultTolerance = 0.15

	// MaxDepth is the default subdivision depth cap for a single curve.
	// A curve never produces more than 2^MaxDepth segments.
	MaxDepth = 16
)

// Option configures path flattening and document conversion.
//
// Example:
//
//	lines, err := svg.FlattenPathData("M0,0 C0,10 10,10 10,0", svg.WithTolerance(0.1))
type Option func(*options)

// options holds the configuration shared by all entry points
type options struct {
	tolerance float64
	maxDepth  int
	workers   int
	simplify  float64
}

// defaultOptions returns the default options
func defaultOptions() options {
	return options{
		tolerance: DefaultTolerance,
		maxDepth:  MaxDepth,
		workers:   runtime.NumCPU(),
	}
}

// newOptions applies opts over the defaults and normalizes invalid values
func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// NaN fails the comparison too
	if !(o.tolerance > 0) {
		Logger().Warn("invalid flattening tolerance, using default",
			"tolerance", o.tolerance, "default", DefaultTolerance)
		o.tolerance = DefaultTolerance
	}
	if o.maxDepth < 0 {
		o.maxDepth = 0
	}
	if o.workers <= 0 {
		o.workers = 1
	}

	return o
}

// WithTolerance sets the maximum perpendicular deviation between curves and
// their polylines. Non-positive values fall back to DefaultTolerance.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		o.tolerance = tolerance
	}
}

// WithMaxDepth overrides the subdivision depth cap
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithWorkers sets how many path elements of a document are flattened
// concurrently
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSimplify enables Ramer–Douglas–Peucker simplification of every
// produced polyline with the given epsilon. Zero disables it.
func WithSimplify(epsilon float64) Option {
	return func(o *options) {
		o.simplify = epsilon
	}
}
