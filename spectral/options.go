// SPDX-License-Identifier: MIT

// Package spectral: functional configuration for the graph-side stages.
//
// Design goals:
//   - Deterministic behavior: parallelism never changes results.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package spectral

import (
	"math"
	"runtime"
)

const (
	// DefaultEpsilon is the degree floor: D[i][i] ≤ DefaultEpsilon is singular.
	DefaultEpsilon = 1e-12

	// DefaultParallelThreshold is the point count from which Adjacency fills
	// rows concurrently. Below it the sequential path is cheaper.
	DefaultParallelThreshold = 256

	// DefaultWorkers = 0 means runtime.GOMAXPROCS(0) at call time.
	DefaultWorkers = 0
)

const (
	panicEpsilonInvalid   = "spectral: WithEpsilon: eps must be finite and >= 0"
	panicThresholdInvalid = "spectral: WithParallelThreshold: n must be >= 0"
	panicWorkersInvalid   = "spectral: WithWorkers: n must be >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported.
type Options struct {
	eps               float64
	parallelThreshold int
	workers           int
}

// WithEpsilon sets the singular-degree floor.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithParallelThreshold sets the point count from which rows are filled
// concurrently. 0 makes every call parallel.
func WithParallelThreshold(n int) Option {
	if n < 0 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.parallelThreshold = n }
}

// WithWorkers caps concurrent row workers; 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		eps:               DefaultEpsilon,
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
