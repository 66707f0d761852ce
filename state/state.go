// Package state models one snapshot of the resource economy: what is in
// stock and how many robots of each kind are running.
//
// A State is a small value (two fixed arrays). Every transition returns a
// fresh State; nothing is ever mutated in place, so recursive search frames
// can hand States to their children without aliasing.
//
// Transitions:
//   - Advance: one minute of passive production (stock += robots).
//   - TryBuild: spend a robot's cost and add the robot, if affordable
//     with the stock held before this minute's production.
package state

import (
	"github.com/katalvlaran/geodecraft/blueprint"
	"github.com/katalvlaran/geodecraft/resource"
)

// State is the stockpile and robot fleet at the start of a minute.
type State struct {
	Stock  resource.Amounts // current resource counts
	Robots resource.Amounts // running robots per kind
}

// Initial returns the starting state: a single ore robot and nothing else.
func Initial() State {
	var s State
	s.Robots[resource.Ore] = 1

	return s
}

// Advance returns s after one minute of production: every robot adds one
// unit of its kind. Robot counts are unchanged.
func (s State) Advance() State {
	s.Stock = s.Stock.Add(s.Robots)

	return s
}

// CanAfford reports whether s holds the full cost of one robot of kind robot.
func (s State) CanAfford(robot resource.Kind, bp *blueprint.Blueprint) bool {
	return robot.Valid() && s.Stock.Covers(bp.Cost(robot))
}

// TryBuild attempts to start one robot of kind robot during the minute that
// begins in s. next must be s.Advance(): the cost is checked against s (a
// robot cannot be paid for with resources produced in the same minute) and
// then subtracted from next, and the new robot only starts producing in the
// following minute.
//
// On failure TryBuild returns the zero State and false.
func (s State) TryBuild(next State, robot resource.Kind, bp *blueprint.Blueprint) (State, bool) {
	if !s.CanAfford(robot, bp) {
		return State{}, false
	}
	next.Stock = next.Stock.Sub(bp.Cost(robot))
	next.Robots[robot]++

	return next, true
}

// Headroom reports whether minutes more minutes of production, with up to
// one new robot per minute, are guaranteed to fit every counter in uint16.
//
// Bound: after m minutes a robot count is at most robots+m and a stockpile
// grows by at most (robots+m)·m.
func (s State) Headroom(minutes int) bool {
	if minutes < 0 {
		return false
	}
	const limit = 1<<16 - 1

	var k int
	for k = 0; k < resource.NumKinds; k++ {
		robots := int(s.Robots[k]) + minutes
		if robots > limit {
			return false
		}
		if int(s.Stock[k])+robots*minutes > limit {
			return false
		}
	}

	return true
}
