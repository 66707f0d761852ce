// Package evaluate_test: shared blueprint batches.
package evaluate_test

import "github.com/katalvlaran/geodecraft/blueprint"

// canonical returns the two reference blueprints: 9/12 geodes at 24 minutes
// (quality sum 33) and 56/62 at 32 minutes (product 3472).
func canonical() []*blueprint.Blueprint {
	return []*blueprint.Blueprint{
		blueprint.MustClassic(1, 4, 2, 3, 14, 2, 7),
		blueprint.MustClassic(2, 2, 3, 3, 8, 3, 12),
	}
}

// batch returns a mixed, deterministic batch of classic-shaped blueprints.
func batch() []*blueprint.Blueprint {
	return append(canonical(),
		blueprint.MustClassic(3, 4, 4, 4, 12, 4, 19),
		blueprint.MustClassic(4, 3, 3, 2, 15, 2, 8),
		blueprint.MustClassic(5, 2, 4, 4, 17, 3, 11),
		blueprint.MustClassic(6, 4, 3, 2, 19, 3, 13),
		blueprint.MustClassic(7, 3, 4, 3, 10, 2, 14),
		blueprint.MustClassic(8, 2, 2, 2, 7, 2, 14),
	)
}
