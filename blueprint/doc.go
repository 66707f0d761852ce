// Package blueprint defines the immutable cost schedule of one problem
// instance: how much of each resource a robot of each kind costs.
//
// 🚀 What is a Blueprint?
//
//	A sparse table cost[robot][resource] plus an opaque id. Absent entries
//	mean zero cost. In the classic domain ore and clay robots cost ore,
//	obsidian robots cost ore + clay and geode robots cost ore + obsidian,
//	but nothing in this package hard-codes those pairs.
//
// ✨ Derived data (computed once by New):
//
//   - MaxSpend(k): the largest amount of resource k any single robot costs.
//     Only one robot can be built per minute, so no run can usefully spend
//     more than MaxSpend(k) of k per minute. Zero for the terminal kind.
//   - Reachable(r): whether a robot of kind r can ever be built starting
//     from a single ore robot. A robot is reachable when every resource it
//     costs is produced by some reachable robot (ore is produced from the
//     start). This is a monotone closure over the production graph.
//
// ⚙️ Usage:
//
//	bp, err := blueprint.New(1,
//	    blueprint.WithCost(resource.Ore, resource.Ore, 4),
//	    blueprint.WithCost(resource.Clay, resource.Ore, 2),
//	    blueprint.WithCost(resource.Obsidian, resource.Ore, 3),
//	    blueprint.WithCost(resource.Obsidian, resource.Clay, 14),
//	    blueprint.WithCost(resource.Geode, resource.Ore, 2),
//	    blueprint.WithCost(resource.Geode, resource.Obsidian, 7),
//	)
//
//	// or, for the classic six-number shape:
//	bp, err = blueprint.Classic(1, 4, 2, 3, 14, 2, 7)
//
// Errors (sentinel):
//   - ErrNegativeID, ErrNilOption, ErrUnknownKind, ErrNegativeCost,
//     ErrCostOutOfRange, ErrDuplicateCost, ErrEmptyCost.
//
// Concurrency:
//   - A *Blueprint is never mutated after New returns and may be shared
//     freely between goroutines.
package blueprint
