package blueprint

import (
	"errors"

	"github.com/katalvlaran/geodecraft/resource"
)

// MaxCost is the largest amount a single cost entry may carry.
// It keeps every stockpile comparison and supply projection well inside
// both uint16 and int ranges.
const MaxCost = 4096

// Sentinel errors returned by New and Classic.
var (
	// ErrNegativeID indicates a blueprint id below zero.
	ErrNegativeID = errors.New("blueprint: id must be non-negative")

	// ErrNilOption indicates that a nil Option was passed to New.
	ErrNilOption = errors.New("blueprint: nil option")

	// ErrUnknownKind indicates a robot or resource kind outside resource.Kinds().
	ErrUnknownKind = errors.New("blueprint: unknown resource kind")

	// ErrNegativeCost indicates a cost entry below zero.
	ErrNegativeCost = errors.New("blueprint: cost must be non-negative")

	// ErrCostOutOfRange indicates a cost entry above MaxCost.
	ErrCostOutOfRange = errors.New("blueprint: cost exceeds MaxCost")

	// ErrDuplicateCost indicates the same (robot, resource) pair was given twice.
	ErrDuplicateCost = errors.New("blueprint: duplicate cost entry")

	// ErrEmptyCost indicates a robot kind whose cost row is entirely zero.
	ErrEmptyCost = errors.New("blueprint: robot has no cost")
)

// Blueprint is an immutable cost schedule for one problem instance.
type Blueprint struct {
	id        int
	cost      [resource.NumKinds]resource.Amounts // cost[robot][resource]
	maxSpend  resource.Amounts                    // per-minute consumption ceiling
	reachable [resource.NumKinds]bool             // robot kinds buildable from the start
}

// Option configures one cost entry of a Blueprint under construction.
type Option func(*draft)

// costEntry is a single (robot, resource, amount) triple as supplied by the caller.
type costEntry struct {
	robot  resource.Kind
	res    resource.Kind
	amount int
}

// draft collects entries before validation.
type draft struct {
	entries []costEntry
}

// WithCost declares that building one robot of kind robot requires amount
// units of res. Pairs that are never declared cost zero.
func WithCost(robot, res resource.Kind, amount int) Option {
	return func(d *draft) {
		d.entries = append(d.entries, costEntry{robot: robot, res: res, amount: amount})
	}
}
