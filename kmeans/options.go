// SPDX-License-Identifier: MIT

package kmeans

import "runtime"

const (
	// DefaultMaxIterations caps Lloyd iterations.
	DefaultMaxIterations = 300

	// DefaultParallelThreshold is the point count from which the assignment
	// step runs row-parallel.
	DefaultParallelThreshold = 1024

	// DefaultWorkers = 0 means runtime.GOMAXPROCS(0).
	DefaultWorkers = 0
)

const (
	panicMaxIterInvalid   = "kmeans: WithMaxIterations: n must be >= 1"
	panicThresholdInvalid = "kmeans: WithParallelThreshold: n must be >= 0"
	panicWorkersInvalid   = "kmeans: WithWorkers: n must be >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	maxIter           int
	parallelThreshold int
	workers           int
}

// WithMaxIterations sets the Lloyd iteration cap.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithParallelThreshold sets the point count from which assignment is
// row-parallel. 0 makes every pass parallel.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// WithWorkers caps assignment workers; 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		maxIter:           DefaultMaxIterations,
		parallelThreshold: DefaultParallelThreshold,
		workers:           DefaultWorkers,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
