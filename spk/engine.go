// SPDX-License-Identifier: MIT

package spk

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/spectral/kmeans"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/spectral"
)

// Engine runs Compute requests with a fixed Config.
type Engine struct {
	cfg     Config
	log     zerolog.Logger
	metrics *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the request logger. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMetrics attaches Prometheus collectors created by NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// New validates cfg and builds an Engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, log: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

var defaultEngine = &Engine{cfg: DefaultConfig(), log: zerolog.Nop()}

// Compute runs goal on a default engine: DefaultConfig, no logging, no metrics.
func Compute(ctx context.Context, goal Goal, points [][]float64, k int) (*Result, error) {
	return defaultEngine.Compute(ctx, goal, points, k)
}

// Compute runs the pipeline up to goal.
//
// Inputs:
//   - points: N×d coordinates for every goal except GoalEigen, where points is
//     read as a symmetric N×N matrix. Never mutated.
//   - k: cluster count for GoalEmbedding and GoalClusters; k ≤ 0 selects it
//     by eigengap. Ignored by the other goals.
//
// Returns:
//   - *Result tagged with goal, carrying warnings for non-fatal conditions.
//   - error: ErrUnknownGoal, or a *StageError wrapping the stage sentinel.
//     ctx cancellation is observed between stages and surfaces as a
//     *StageError wrapping ctx.Err().
func (e *Engine) Compute(ctx context.Context, goal Goal, points [][]float64, k int) (*Result, error) {
	if !goal.valid() {
		err := fmt.Errorf("%s: %w", goal, ErrUnknownGoal)
		e.metrics.observeRequest(goal, err)

		return nil, err
	}

	start := time.Now()
	p := &pipeline{
		ctx:     ctx,
		cfg:     e.cfg,
		metrics: e.metrics,
		id:      uuid.NewString(),
	}
	p.log = e.log.With().
		Str("request_id", p.id).
		Str("goal", goal.String()).
		Int("n", len(points)).
		Logger()

	res, err := p.run(goal, points, k)
	e.metrics.observeRequest(goal, err)
	if err != nil {
		p.log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("compute failed")

		return nil, err
	}

	res.Warnings = p.warnings
	ev := p.log.Info().Int("k", res.K).Int("warnings", len(res.Warnings))
	if res.Clusters != nil {
		ev = ev.Int("iterations", res.Clusters.Iterations)
	}
	ev.Dur("elapsed", time.Since(start)).Msg("compute done")

	return res, nil
}

// pipeline is the per-request state of Compute.
type pipeline struct {
	ctx      context.Context
	cfg      Config
	log      zerolog.Logger
	metrics  *Metrics
	id       string
	warnings []Warning
}

// step runs fn as the transition into stage, timing it and wrapping its error.
func (p *pipeline) step(stage Stage, fn func() error) error {
	if err := p.ctx.Err(); err != nil {
		return &StageError{Stage: stage, Err: err}
	}
	t0 := time.Now()
	err := fn()
	took := time.Since(t0)
	p.metrics.observeStage(stage, took)
	p.log.Debug().Str("stage", stage.String()).Dur("took", took).Err(err).Msg("stage")
	if err != nil {
		return &StageError{Stage: stage, Err: err}
	}

	return nil
}

func (p *pipeline) warn(stage Stage, kind WarnKind, detail string) {
	w := Warning{Stage: stage, Kind: kind, Detail: detail}
	p.warnings = append(p.warnings, w)
	p.metrics.observeWarning(kind)
	p.log.Warn().Str("stage", stage.String()).Str("kind", kind.String()).Msg(detail)
}

func (p *pipeline) run(goal Goal, points [][]float64, k int) (*Result, error) {
	res := &Result{Goal: goal, RequestID: p.id}

	if goal == GoalEigen {
		var a *matrix.Dense
		err := p.step(StageLoaded, func() (err error) {
			a, err = matrix.NewFromRows(points)
			return err
		})
		if err != nil {
			return nil, err
		}
		if err = p.step(StageDiagonalized, func() (err error) {
			res.Eigen, err = p.eigen(a)
			return err
		}); err != nil {
			return nil, err
		}

		return res, nil
	}

	var (
		sopts   = p.cfg.spectralOptions()
		w, d, l *matrix.Dense
		eig     *matrix.EigenResult
		u       *matrix.Dense
		seeding *kmeans.Seeding
		fit     *kmeans.Clustering
	)
	if err := p.step(StageLoaded, func() error {
		return spectral.ValidatePoints(points)
	}); err != nil {
		return nil, err
	}
	if err := p.step(StageGraphBuilt, func() (err error) {
		w, err = spectral.Adjacency(points, sopts...)
		return err
	}); err != nil {
		return nil, err
	}
	if goal == GoalAdjacency {
		res.Matrix = w
		return res, nil
	}

	if err := p.step(StageDegreeBuilt, func() (err error) {
		d, err = spectral.Degree(w)
		return err
	}); err != nil {
		return nil, err
	}
	if goal == GoalDegree {
		res.Matrix = d
		return res, nil
	}

	if err := p.step(StageNormalized, func() (err error) {
		l, err = spectral.NormalizedLaplacian(d, w, sopts...)
		return err
	}); err != nil {
		return nil, err
	}
	if goal == GoalLaplacian {
		res.Matrix = l
		return res, nil
	}

	if err := p.step(StageDiagonalized, func() (err error) {
		eig, err = p.eigen(l)
		return err
	}); err != nil {
		return nil, err
	}
	if err := p.step(StageEmbedded, func() (err error) {
		if res.K, err = spectral.Eigengap(eig.Values, k); err != nil {
			return err
		}
		u, err = spectral.Embed(eig.Vectors, res.K)
		return err
	}); err != nil {
		return nil, err
	}
	if goal == GoalEmbedding {
		res.Matrix = u
		return res, nil
	}

	if err := p.step(StageSeeded, func() (err error) {
		seeding, err = kmeans.Seed(u, res.K, p.cfg.Seed)
		return err
	}); err != nil {
		return nil, err
	}
	if err := p.step(StageClustered, func() (err error) {
		fit, err = kmeans.Lloyd(u, seeding.Centroids, p.cfg.kmeansOptions()...)
		return err
	}); err != nil {
		return nil, err
	}
	p.metrics.observeIterations(fit.Iterations)
	for _, c := range fit.EmptyClusters {
		p.warn(StageClustered, WarnEmptyCluster, fmt.Sprintf("cluster %d has no members, centroid kept", c))
	}
	res.Clusters = &Clusters{
		K:           res.K,
		Assignment:  fit.Assignment,
		Centroids:   fit.Centroids,
		SeedIndices: seeding.Indices,
		Iterations:  fit.Iterations,
		Converged:   fit.Converged,
	}

	return res, nil
}

// eigen runs Jacobi and sorts the pairs. Non-convergence becomes a warning.
func (p *pipeline) eigen(a *matrix.Dense) (*matrix.EigenResult, error) {
	raw, err := matrix.Jacobi(a, p.cfg.matrixOptions()...)
	if err != nil && !matrix.IsNonConvergence(err) {
		return nil, err
	}
	if raw == nil {
		return nil, err
	}
	p.metrics.observeRotations(raw.Rotations)
	if err != nil {
		p.warn(StageDiagonalized, WarnNonConvergence, err.Error())
	}

	return matrix.SortEigen(raw)
}
