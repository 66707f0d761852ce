package blueprint

import "github.com/katalvlaran/geodecraft/resource"

// New validates the supplied cost entries and returns an immutable Blueprint
// with its derived ceilings and reachability precomputed.
//
// Contract:
//   - id ≥ 0 (it is only used as a scoring weight).
//   - Every kind is valid, every amount is in [0, MaxCost].
//   - Each (robot, resource) pair appears at most once.
//   - Every robot kind costs something (a free robot is a malformed table).
//
// Complexity: O(E + K³) where E is the number of entries and K = NumKinds.
func New(id int, opts ...Option) (*Blueprint, error) {
	if id < 0 {
		return nil, ErrNegativeID
	}

	var d draft
	for _, opt := range opts {
		if opt == nil {
			return nil, ErrNilOption
		}
		opt(&d)
	}

	bp := &Blueprint{id: id}
	var seen [resource.NumKinds][resource.NumKinds]bool
	for _, e := range d.entries {
		if !e.robot.Valid() || !e.res.Valid() {
			return nil, ErrUnknownKind
		}
		if e.amount < 0 {
			return nil, ErrNegativeCost
		}
		if e.amount > MaxCost {
			return nil, ErrCostOutOfRange
		}
		if seen[e.robot][e.res] {
			return nil, ErrDuplicateCost
		}
		seen[e.robot][e.res] = true
		bp.cost[e.robot][e.res] = uint16(e.amount)
	}

	var robot resource.Kind
	for robot = 0; robot < resource.NumKinds; robot++ {
		if bp.cost[robot].IsZero() {
			return nil, ErrEmptyCost
		}
	}

	bp.deriveMaxSpend()
	bp.deriveReachable()

	return bp, nil
}

// Classic builds the canonical six-number blueprint shape:
// ore robot (ore), clay robot (ore), obsidian robot (ore + clay),
// geode robot (ore + obsidian).
func Classic(id, oreOre, clayOre, obsidianOre, obsidianClay, geodeOre, geodeObsidian int) (*Blueprint, error) {
	return New(id,
		WithCost(resource.Ore, resource.Ore, oreOre),
		WithCost(resource.Clay, resource.Ore, clayOre),
		WithCost(resource.Obsidian, resource.Ore, obsidianOre),
		WithCost(resource.Obsidian, resource.Clay, obsidianClay),
		WithCost(resource.Geode, resource.Ore, geodeOre),
		WithCost(resource.Geode, resource.Obsidian, geodeObsidian),
	)
}

// MustClassic is like Classic but panics on invalid input.
// Intended for tests, examples and package-level fixtures.
func MustClassic(id, oreOre, clayOre, obsidianOre, obsidianClay, geodeOre, geodeObsidian int) *Blueprint {
	bp, err := Classic(id, oreOre, clayOre, obsidianOre, obsidianClay, geodeOre, geodeObsidian)
	if err != nil {
		panic(err.Error())
	}

	return bp
}

// ID returns the opaque identifier supplied at construction.
func (b *Blueprint) ID() int { return b.id }

// Cost returns the cost row of robot. Unknown kinds cost nothing.
func (b *Blueprint) Cost(robot resource.Kind) resource.Amounts {
	if !robot.Valid() {
		return resource.Amounts{}
	}

	return b.cost[robot]
}

// MaxSpend returns the per-minute consumption ceiling of k: the largest
// amount of k any single robot costs. Zero for the terminal kind and for
// unknown kinds.
func (b *Blueprint) MaxSpend(k resource.Kind) uint16 {
	if !k.Valid() {
		return 0
	}

	return b.maxSpend[k]
}

// Reachable reports whether a robot of kind robot can ever be built when
// starting from a single ore robot and empty stockpiles.
func (b *Blueprint) Reachable(robot resource.Kind) bool {
	return robot.Valid() && b.reachable[robot]
}

// deriveMaxSpend fills maxSpend with the column-wise maxima of the cost table.
// The terminal column stays zero: geodes are never spent.
func (b *Blueprint) deriveMaxSpend() {
	var robot, k resource.Kind
	for robot = 0; robot < resource.NumKinds; robot++ {
		for k = 0; k < resource.NumKinds; k++ {
			if k.Terminal() {
				continue
			}
			if b.cost[robot][k] > b.maxSpend[k] {
				b.maxSpend[k] = b.cost[robot][k]
			}
		}
	}
}

// deriveReachable records which robots can be built from the initial state.
func (b *Blueprint) deriveReachable() {
	var robots resource.Amounts
	robots[resource.Ore] = 1
	b.reachable = b.ReachableFrom(resource.Amounts{}, robots)
}

// ReachableFrom runs the production closure from an arbitrary stockpile and
// fleet. A kind is produced when some robot of it is running; a robot is
// reachable when every resource it costs is produced or already held in
// sufficient quantity. Reaching a robot makes its kind produced.
//
// The result over-approximates: a kind marked false can never be built from
// (stock, robots), a kind marked true might be.
//
// Complexity: O(K³) with K = NumKinds; each pass unlocks at least one kind
// or terminates.
func (b *Blueprint) ReachableFrom(stock, robots resource.Amounts) [resource.NumKinds]bool {
	var (
		produced  [resource.NumKinds]bool
		reachable [resource.NumKinds]bool
		k         resource.Kind
	)
	for k = 0; k < resource.NumKinds; k++ {
		produced[k] = robots[k] > 0
	}

	changed := true
	for changed {
		changed = false
		for k = 0; k < resource.NumKinds; k++ {
			if reachable[k] || !fundable(b.cost[k], stock, produced) {
				continue
			}
			reachable[k] = true
			produced[k] = true
			changed = true
		}
	}

	return reachable
}

// fundable reports whether every resource in cost is either produced or
// covered by stock.
func fundable(cost, stock resource.Amounts, produced [resource.NumKinds]bool) bool {
	var k int
	for k = 0; k < resource.NumKinds; k++ {
		if cost[k] > 0 && !produced[k] && stock[k] < cost[k] {
			return false
		}
	}

	return true
}
