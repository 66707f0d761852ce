// Package search: branch-and-bound over the minute-by-minute robot economy.
//
// BestGeodes returns the largest terminal-resource (geode) stockpile that
// can be held after a given number of minutes, starting from a State and
// following a Blueprint. Each minute exactly one action is taken: wait, or
// start one robot. Production happens every minute regardless.
//
// Search:
//
//  1. Depth-first recursion, one level per minute; depth is bounded by the
//     horizon (≤ MaxHorizon), branching by NumKinds+1. No memoization and no
//     explicit stack: States are values handed to child frames.
//  2. Branching order: terminal robot, then the other robots from the most
//     advanced kind down to ore, then wait. Terminal-first tightens the
//     incumbent early.
//  3. Dominance pruning on non-terminal robot kinds (PruneMode):
//     - PruneSupply (default): with t minutes left, skip a k robot when
//     stock[k] + robots[k]·(t−2) ≥ MaxSpend(k)·(t−2). At most MaxSpend(k)
//     of k can be spent per minute and only spending in the first t−1
//     minutes can still pay off, so every useful build stays affordable
//     without the extra robot. This subsumes the capacity cap.
//     - PruneCapacity: skip when robots[k] ≥ MaxSpend(k).
//     - PruneNone: exhaustive (testing only).
//  4. Idle skip (IdleSkip): a robot that was affordable when the search
//     chose to wait may not be the next robot built; building it one minute
//     earlier is never worse. The set travels as a bitmask argument.
//  5. Terminal policy:
//     - TerminalFirst (default): the terminal branch is dominant when every
//     non-terminal fleet already meets its MaxSpend ceiling (a terminal
//     robot is then affordable every remaining minute); otherwise the other
//     branches are still explored. Exact.
//     - TerminalGreedy: whenever a terminal robot is affordable it replaces
//     the wait branch. Much faster, not guaranteed optimal.
//  6. Upper bound (BoundAlgo):
//     - OptimisticBound (default): geodes + geodeRobots·t + t·(t−1)/2, the
//     yield if a terminal robot were started every remaining minute. A
//     subtree whose bound cannot beat the incumbent is cut.
//     - NoBound: the recursion is a pure function of its arguments.
//
// Every rule except TerminalGreedy is admissible: the reported value equals
// an exhaustive search over all legal plans.
//
// Complexity:
//   - Worst case O((K+1)^T) nodes for K kinds and horizon T; pruning keeps
//     T=32 on classic blueprints well below a second.
//   - Memory: O(T) stack frames of a few dozen bytes each.
//
// Errors:
//   - ErrNilBlueprint, ErrNegativeHorizon, ErrHorizonTooLong,
//     ErrStateOverflow, ErrUnknownPolicy.
//
// Concurrency:
//   - A search is single-threaded and owns all of its state. Independent
//     searches (one per blueprint) may run in parallel; see package evaluate.
package search
