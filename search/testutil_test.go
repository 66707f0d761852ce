// Package search_test: shared fixtures and the exhaustive reference solver.
//
// Policy:
//   - Deterministic fixtures only (fixed seeds, canonical blueprints).
//   - The reference solver explores every legal plan with memoization on
//     (State, minutes); it shares no code with the engine under test beyond
//     the state transitions themselves.
package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/geodecraft/blueprint"
	"github.com/katalvlaran/geodecraft/resource"
	"github.com/katalvlaran/geodecraft/state"
)

// seedDet is the fixed seed for synthetic blueprints.
const seedDet = 1912

// Canonical blueprints with known optima: 9/56 and 12/62 at 24/32 minutes.
var (
	canon1 = blueprint.MustClassic(1, 4, 2, 3, 14, 2, 7)
	canon2 = blueprint.MustClassic(2, 2, 3, 3, 8, 3, 12)
)

type memoKey struct {
	s state.State
	t int
}

// bruteForce returns the exact optimum by exhaustive search over every legal
// action sequence (wait, or any affordable robot) with memoization.
func bruteForce(s state.State, bp *blueprint.Blueprint, t int) int {
	memo := make(map[memoKey]int)
	var rec func(s state.State, t int) int
	rec = func(s state.State, t int) int {
		if t == 0 {
			return int(s.Stock[resource.Geode])
		}
		key := memoKey{s: s, t: t}
		if v, ok := memo[key]; ok {
			return v
		}
		next := s.Advance()
		best := rec(next, t-1)
		for _, robot := range resource.Kinds() {
			if child, ok := s.TryBuild(next, robot, bp); ok {
				if v := rec(child, t-1); v > best {
					best = v
				}
			}
		}
		memo[key] = best
		return best
	}

	return rec(s, t)
}

// syntheticBlueprints returns n deterministic random cost tables. Each robot
// costs one or two kinds drawn from the non-terminal kinds, 1..4 units each,
// so tables range from classic-looking chains to unusual shapes (clay robots
// paid in obsidian, geode robots paid in ore only, …).
func syntheticBlueprints(t *testing.T, n int) []*blueprint.Blueprint {
	t.Helper()
	rng := rand.New(rand.NewSource(seedDet))
	out := make([]*blueprint.Blueprint, 0, n)
	for id := 1; len(out) < n; id++ {
		var opts []blueprint.Option
		for _, robot := range resource.Kinds() {
			first := resource.Kind(rng.Intn(resource.NumKinds - 1))
			opts = append(opts, blueprint.WithCost(robot, first, 1+rng.Intn(4)))
			if rng.Intn(2) == 0 {
				second := resource.Kind(rng.Intn(resource.NumKinds - 1))
				if second != first {
					opts = append(opts, blueprint.WithCost(robot, second, 1+rng.Intn(4)))
				}
			}
		}
		bp, err := blueprint.New(id, opts...)
		if err != nil {
			t.Fatalf("synthetic blueprint %d: %v", id, err)
		}
		out = append(out, bp)
	}

	return out
}

// randomStates returns n small deterministic states (stock < 10, robots < 4).
func randomStates(n int) []state.State {
	rng := rand.New(rand.NewSource(seedDet + 1))
	out := make([]state.State, n)
	for i := range out {
		for k := 0; k < resource.NumKinds; k++ {
			out[i].Stock[k] = uint16(rng.Intn(10))
			out[i].Robots[k] = uint16(rng.Intn(4))
		}
	}

	return out
}
