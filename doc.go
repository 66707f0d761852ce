// Package geodecraft finds the best build order for a small robot economy:
// given a blueprint of robot costs and a number of minutes, how many geodes
// can be cracked?
//
// 🚀 What is geodecraft?
//
//	A pure-Go, deterministic optimizer made of small packages:
//		• resource : the four resource kinds and fixed-width amounts
//		• blueprint: validated cost tables, spend ceilings, reachability
//		• state    : stockpile + fleet snapshots and their transitions
//		• search   : exact branch-and-bound over one blueprint
//		• evaluate : parallel batch scoring (quality sum, top product)
//
// ✨ Guarantees
//
//   - Exact by default: every pruning rule is admissible; results match
//     exhaustive search.
//   - Deterministic: same inputs, same answer, whatever the worker count.
//   - Strict sentinels: invalid input is reported, never panicked on
//     (except the Must* helpers).
//
// Minute model:
//
//	start of minute: stock S, robots R
//	decide:          wait, or pay cost(k) out of S for one k robot
//	produce:         S += R          (the new robot is not counted yet)
//	end of minute:   R[k]++          (if a robot was started)
//
// Quick start:
//
//	bp := blueprint.MustClassic(1, 4, 2, 3, 14, 2, 7)
//	geodes, _ := search.BestGeodes(state.Initial(), bp, 24) // 9
//
//	sum, _ := evaluate.QualitySum([]*blueprint.Blueprint{bp}) // 9
package geodecraft
