package search

import (
	"github.com/katalvlaran/geodecraft/blueprint"
	"github.com/katalvlaran/geodecraft/resource"
	"github.com/katalvlaran/geodecraft/state"
)

// kindMask is a set of robot kinds, bit k for kind k.
type kindMask uint8

func bit(k resource.Kind) kindMask { return 1 << k }

// engine holds the per-search policy, the read-only blueprint data and the
// incumbent. One engine serves exactly one search on one goroutine.
type engine struct {
	// Configuration / policy
	bp       *blueprint.Blueprint
	terminal TerminalPolicy
	prune    PruneMode
	useBound bool
	idleSkip bool

	// Precomputes
	maxSpend resource.Amounts // per-kind consumption ceiling

	// Incumbent (best geodes proven reachable so far) and diagnostics
	best  int
	nodes uint64
}

// BestGeodes returns the maximum geode stockpile reachable from s within
// minutes minutes under bp. See Search for contracts and errors.
func BestGeodes(s state.State, bp *blueprint.Blueprint, minutes int, opts ...Option) (int, error) {
	res, err := Search(s, bp, minutes, opts...)
	if err != nil {
		return 0, err
	}

	return res.Geodes, nil
}

// Search runs the branch-and-bound search and reports the optimum together
// with the number of visited nodes.
//
// Contracts:
//   - bp must be non-nil.
//   - 0 ≤ minutes ≤ MaxHorizon.
//   - s.Headroom(minutes) must hold (no counter can overflow).
//
// The base case minutes == 0 returns s.Stock[Geode].
func Search(s state.State, bp *blueprint.Blueprint, minutes int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := validate(s, bp, minutes, o); err != nil {
		return Result{}, err
	}

	e := engine{
		bp:       bp,
		terminal: o.Terminal,
		prune:    o.Pruning,
		useBound: o.Bound == OptimisticBound,
		idleSkip: o.IdleSkip,
	}
	var k resource.Kind
	for k = 0; k < resource.NumKinds; k++ {
		e.maxSpend[k] = bp.MaxSpend(k)
	}
	e.best = waitValue(s, minutes)

	// If no terminal robot can ever be started, waiting is all there is.
	reach := bp.ReachableFrom(s.Stock, s.Robots)
	if !reach[resource.Terminal] {
		return Result{Geodes: e.best, Nodes: 1}, nil
	}

	got := e.dfs(s, minutes, 0)
	if got > e.best {
		e.best = got
	}

	return Result{Geodes: e.best, Nodes: e.nodes}, nil
}

// validate applies the strict sentinels before any search work starts.
func validate(s state.State, bp *blueprint.Blueprint, minutes int, o Options) error {
	if bp == nil {
		return ErrNilBlueprint
	}
	if minutes < 0 {
		return ErrNegativeHorizon
	}
	if minutes > MaxHorizon {
		return ErrHorizonTooLong
	}
	if !s.Headroom(minutes) {
		return ErrStateOverflow
	}
	switch {
	case o.Terminal != TerminalFirst && o.Terminal != TerminalGreedy,
		o.Pruning != PruneSupply && o.Pruning != PruneCapacity && o.Pruning != PruneNone,
		o.Bound != OptimisticBound && o.Bound != NoBound:
		return ErrUnknownPolicy
	}

	return nil
}

// waitValue is the geode count reached by never building again.
func waitValue(s state.State, t int) int {
	return int(s.Stock[resource.Terminal]) + int(s.Robots[resource.Terminal])*t
}

// optimistic is waitValue plus one extra terminal robot started in every
// remaining minute: 0 + 1 + … + (t−1) extra geodes.
func optimistic(s state.State, t int) int {
	return waitValue(s, t) + t*(t-1)/2
}

// dfs returns the best geode count reachable from s with t minutes left.
// idle holds the robots that were affordable when the parent chose to wait.
func (e *engine) dfs(s state.State, t int, idle kindMask) int {
	e.nodes++
	if t == 0 {
		return int(s.Stock[resource.Terminal])
	}

	best := waitValue(s, t)
	if best > e.best {
		e.best = best
	}
	if e.useBound && optimistic(s, t) <= e.best {
		return best
	}

	var (
		next       = s.Advance()
		affordable kindMask
		terminal   = resource.Terminal
		skipWait   bool
	)

	// 1) Terminal robot first.
	if s.CanAfford(terminal, e.bp) {
		affordable |= bit(terminal)
		if idle&bit(terminal) == 0 {
			child, _ := s.TryBuild(next, terminal, e.bp)
			best = max(best, e.dfs(child, t-1, 0))
			if e.terminal == TerminalGreedy {
				skipWait = true
			} else if e.saturated(s) {
				return best
			}
		}
	}

	// 2) Non-terminal robots, most advanced kind first.
	var k resource.Kind
	for k = terminal; k > 0; {
		k--
		if !s.CanAfford(k, e.bp) {
			continue
		}
		affordable |= bit(k)
		if idle&bit(k) != 0 || e.dominated(s, k, t) {
			continue
		}
		child, _ := s.TryBuild(next, k, e.bp)
		best = max(best, e.dfs(child, t-1, 0))
	}

	// 3) Wait. Never skipped just because nothing was buildable.
	if !skipWait {
		var carry kindMask
		if e.idleSkip {
			carry = idle | affordable
		}
		best = max(best, e.dfs(next, t-1, carry))
	}

	return best
}

// dominated reports whether starting a robot of non-terminal kind k with t
// minutes left can be skipped without losing the optimum.
func (e *engine) dominated(s state.State, k resource.Kind, t int) bool {
	switch e.prune {
	case PruneCapacity:
		return s.Robots[k] >= e.maxSpend[k]
	case PruneSupply:
		// Only spending in the first t−1 minutes can still pay off, and the
		// build happening now needs no new robot; t−2 minutes remain at risk.
		h := t - 2
		if h <= 0 {
			return true
		}
		return int(s.Stock[k])+int(s.Robots[k])*h >= int(e.maxSpend[k])*h
	default:
		return false
	}
}

// saturated reports whether every non-terminal fleet meets its ceiling, in
// which case a terminal robot stays affordable every minute once it is
// affordable now and building it every minute is optimal. A terminal robot
// that costs terminal resource is never treated as dominant.
func (e *engine) saturated(s state.State) bool {
	if e.bp.Cost(resource.Terminal)[resource.Terminal] > 0 {
		return false
	}
	var k resource.Kind
	for k = 0; k < resource.NumKinds; k++ {
		if k.Terminal() {
			continue
		}
		if s.Robots[k] < e.maxSpend[k] {
			return false
		}
	}

	return true
}
