package search

import "errors"

// MaxHorizon is the longest supported horizon in minutes. It bounds the
// recursion depth and keeps every counter of a State inside uint16.
const MaxHorizon = 64

// Sentinel errors returned by Search and BestGeodes.
var (
	// ErrNilBlueprint indicates that a nil *blueprint.Blueprint was passed.
	ErrNilBlueprint = errors.New("search: blueprint is nil")

	// ErrNegativeHorizon indicates minutes < 0.
	ErrNegativeHorizon = errors.New("search: horizon must be non-negative")

	// ErrHorizonTooLong indicates minutes > MaxHorizon.
	ErrHorizonTooLong = errors.New("search: horizon exceeds MaxHorizon")

	// ErrStateOverflow indicates a start State whose counters could exceed
	// uint16 within the horizon.
	ErrStateOverflow = errors.New("search: state counters could overflow within horizon")

	// ErrUnknownPolicy indicates an out-of-range TerminalPolicy, PruneMode or BoundAlgo.
	ErrUnknownPolicy = errors.New("search: unknown policy")
)

// TerminalPolicy selects how the terminal-robot branch is prioritized.
type TerminalPolicy int

const (
	// TerminalFirst explores the terminal robot first and treats it as
	// dominant only when that is provably optimal. Exact.
	TerminalFirst TerminalPolicy = iota

	// TerminalGreedy lets an affordable terminal robot replace the wait
	// branch. Heuristic; may under-report.
	TerminalGreedy
)

// PruneMode selects the dominance rule for non-terminal robot kinds.
type PruneMode int

const (
	// PruneSupply skips a robot whose resource can no longer become a bottleneck.
	PruneSupply PruneMode = iota

	// PruneCapacity skips a robot once its fleet meets the per-minute ceiling.
	PruneCapacity

	// PruneNone disables dominance pruning.
	PruneNone
)

// BoundAlgo selects the upper bound used to cut subtrees.
type BoundAlgo int

const (
	// OptimisticBound assumes a terminal robot every remaining minute.
	OptimisticBound BoundAlgo = iota

	// NoBound disables bounding.
	NoBound
)

var (
	terminalNames = [...]string{TerminalFirst: "first", TerminalGreedy: "greedy"}
	pruneNames    = [...]string{PruneSupply: "supply", PruneCapacity: "capacity", PruneNone: "none"}
	boundNames    = [...]string{OptimisticBound: "optimistic", NoBound: "none"}
)

func (p TerminalPolicy) String() string { return nameOf(terminalNames[:], int(p)) }
func (m PruneMode) String() string      { return nameOf(pruneNames[:], int(m)) }
func (b BoundAlgo) String() string      { return nameOf(boundNames[:], int(b)) }

// ParseTerminalPolicy maps "first" or "greedy" to a TerminalPolicy.
func ParseTerminalPolicy(s string) (TerminalPolicy, error) {
	i, err := indexOf(terminalNames[:], s)
	return TerminalPolicy(i), err
}

// ParsePruneMode maps "supply", "capacity" or "none" to a PruneMode.
func ParsePruneMode(s string) (PruneMode, error) {
	i, err := indexOf(pruneNames[:], s)
	return PruneMode(i), err
}

// ParseBoundAlgo maps "optimistic" or "none" to a BoundAlgo.
func ParseBoundAlgo(s string) (BoundAlgo, error) {
	i, err := indexOf(boundNames[:], s)
	return BoundAlgo(i), err
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}

	return names[i]
}

func indexOf(names []string, s string) (int, error) {
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}

	return 0, ErrUnknownPolicy
}

// Options configures a search. The zero value is not the default; start
// from DefaultOptions.
type Options struct {
	Terminal TerminalPolicy // terminal-robot priority
	Pruning  PruneMode      // dominance rule for non-terminal robots
	Bound    BoundAlgo      // subtree upper bound
	IdleSkip bool           // forbid re-deciding a robot skipped by the previous wait
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the exact, fully pruned configuration:
// TerminalFirst, PruneSupply, OptimisticBound, IdleSkip on.
func DefaultOptions() Options {
	return Options{
		Terminal: TerminalFirst,
		Pruning:  PruneSupply,
		Bound:    OptimisticBound,
		IdleSkip: true,
	}
}

// WithTerminalPolicy sets the terminal-robot priority.
func WithTerminalPolicy(p TerminalPolicy) Option {
	return func(o *Options) { o.Terminal = p }
}

// WithPruning sets the dominance rule for non-terminal robots.
func WithPruning(m PruneMode) Option {
	return func(o *Options) { o.Pruning = m }
}

// WithBound sets the subtree upper bound.
func WithBound(b BoundAlgo) Option {
	return func(o *Options) { o.Bound = b }
}

// WithIdleSkip enables or disables the idle-skip rule.
func WithIdleSkip(on bool) Option {
	return func(o *Options) { o.IdleSkip = on }
}

// WithOptions replaces the whole configuration, e.g. one decoded from a
// config file. Later options still override individual fields.
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// Result is the outcome of one search.
type Result struct {
	// Geodes is the best terminal-resource stockpile reachable.
	Geodes int

	// Nodes is the number of search nodes visited (diagnostics).
	Nodes uint64
}
