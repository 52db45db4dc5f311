// SPDX-License-Identifier: MIT

package spk

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spectral/kmeans"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/spectral"
)

// Config carries the numeric knobs of every stage. The zero value is not
// valid; start from DefaultConfig.
type Config struct {
	// JacobiTolerance bounds the off-diagonal sum of squares, scaled by N.
	JacobiTolerance float64 `yaml:"jacobi_tolerance"`
	// JacobiMaxSweeps caps rotations at sweeps·N(N−1)/2.
	JacobiMaxSweeps int `yaml:"jacobi_max_sweeps"`
	// LloydMaxIterations caps Lloyd assignment passes.
	LloydMaxIterations int `yaml:"lloyd_max_iterations"`
	// DegreeEpsilon is the singular-degree floor.
	DegreeEpsilon float64 `yaml:"degree_epsilon"`
	// Seed feeds the k-means++ random source.
	Seed int64 `yaml:"seed"`
	// ParallelThreshold is the point count from which row work is parallel.
	ParallelThreshold int `yaml:"parallel_threshold"`
	// Workers caps row workers; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the package defaults of every stage and seed 0.
func DefaultConfig() Config {
	return Config{
		JacobiTolerance:    matrix.DefaultTolerance,
		JacobiMaxSweeps:    matrix.DefaultMaxSweeps,
		LloydMaxIterations: kmeans.DefaultMaxIterations,
		DegreeEpsilon:      spectral.DefaultEpsilon,
		Seed:               0,
		ParallelThreshold:  spectral.DefaultParallelThreshold,
		Workers:            0,
	}
}

// LoadConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected; empty input yields DefaultConfig.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("spk: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfigFile reads path and decodes it with LoadConfig.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("spk: read config: %w", err)
	}

	return LoadConfig(data)
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !(c.JacobiTolerance > 0) || math.IsInf(c.JacobiTolerance, 0):
		return fmt.Errorf("jacobi_tolerance %g: %w", c.JacobiTolerance, ErrInvalidConfig)
	case c.JacobiMaxSweeps < 0:
		return fmt.Errorf("jacobi_max_sweeps %d: %w", c.JacobiMaxSweeps, ErrInvalidConfig)
	case c.LloydMaxIterations < 1:
		return fmt.Errorf("lloyd_max_iterations %d: %w", c.LloydMaxIterations, ErrInvalidConfig)
	case !(c.DegreeEpsilon >= 0) || math.IsInf(c.DegreeEpsilon, 0):
		return fmt.Errorf("degree_epsilon %g: %w", c.DegreeEpsilon, ErrInvalidConfig)
	case c.ParallelThreshold < 0:
		return fmt.Errorf("parallel_threshold %d: %w", c.ParallelThreshold, ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	}

	return nil
}

// The option builders panic on invalid values; call them on validated configs only.

func (c Config) matrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithTolerance(c.JacobiTolerance),
		matrix.WithMaxSweeps(c.JacobiMaxSweeps),
	}
}

func (c Config) spectralOptions() []spectral.Option {
	return []spectral.Option{
		spectral.WithEpsilon(c.DegreeEpsilon),
		spectral.WithParallelThreshold(c.ParallelThreshold),
		spectral.WithWorkers(c.Workers),
	}
}

func (c Config) kmeansOptions() []kmeans.Option {
	return []kmeans.Option{
		kmeans.WithMaxIterations(c.LloydMaxIterations),
		kmeans.WithParallelThreshold(c.ParallelThreshold),
		kmeans.WithWorkers(c.Workers),
	}
}
