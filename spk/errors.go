// SPDX-License-Identifier: MIT

package spk

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownGoal indicates a Goal value or goal name outside the known set.
	ErrUnknownGoal = errors.New("spk: unknown goal")

	// ErrInvalidConfig indicates a Config that fails Validate.
	ErrInvalidConfig = errors.New("spk: invalid config")
)

// Stage is a pipeline state.
type Stage int

const (
	StageLoaded Stage = iota
	StageGraphBuilt
	StageDegreeBuilt
	StageNormalized
	StageDiagonalized
	StageEmbedded
	StageSeeded
	StageClustered
)

var stageNames = [...]string{
	StageLoaded:       "loaded",
	StageGraphBuilt:   "graph_built",
	StageDegreeBuilt:  "degree_built",
	StageNormalized:   "normalized",
	StageDiagonalized: "diagonalized",
	StageEmbedded:     "embedded",
	StageSeeded:       "seeded",
	StageClustered:    "clustered",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}

	return stageNames[s]
}

// StageError reports the pipeline state a request failed to reach.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("spk: stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
