// SPDX-License-Identifier: MIT

package spk

import (
	"fmt"
	"strings"
)

// Goal selects what Compute returns.
type Goal int

const (
	GoalAdjacency Goal = iota
	GoalDegree
	GoalLaplacian
	GoalEigen
	GoalClusters
	GoalEmbedding
)

var goalNames = [...]string{
	GoalAdjacency: "adjacency",
	GoalDegree:    "degree",
	GoalLaplacian: "laplacian",
	GoalEigen:     "eigen",
	GoalClusters:  "clusters",
	GoalEmbedding: "embedding",
}

// legacy goal names accepted by ParseGoal.
var goalAliases = map[string]Goal{
	"wam":    GoalAdjacency,
	"ddg":    GoalDegree,
	"lnorm":  GoalLaplacian,
	"jacobi": GoalEigen,
	"spk":    GoalClusters,
	"t":      GoalEmbedding,
}

func (g Goal) String() string {
	if !g.valid() {
		return fmt.Sprintf("goal(%d)", int(g))
	}

	return goalNames[g]
}

func (g Goal) valid() bool { return g >= 0 && int(g) < len(goalNames) }

// ParseGoal maps a goal name to a Goal. Matching is case-insensitive and
// accepts both the names printed by Goal.String and the short names
// wam, ddg, lnorm, jacobi, spk and t.
func ParseGoal(name string) (Goal, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for g, n := range goalNames {
		if n == key {
			return Goal(g), nil
		}
	}
	if g, ok := goalAliases[key]; ok {
		return g, nil
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownGoal)
}
