// Package blueprint_test validates construction, validation sentinels and
// the derived data (MaxSpend, Reachable) of blueprint.Blueprint.
package blueprint_test

import (
	"testing"

	"github.com/katalvlaran/geodecraft/blueprint"
	"github.com/katalvlaran/geodecraft/resource"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation: malformed tables are rejected at construction.
// ------------------------------------------------------------------------

func TestNew_Errors_StrictSentinels(t *testing.T) {
	full := []blueprint.Option{
		blueprint.WithCost(resource.Ore, resource.Ore, 4),
		blueprint.WithCost(resource.Clay, resource.Ore, 2),
		blueprint.WithCost(resource.Obsidian, resource.Ore, 3),
		blueprint.WithCost(resource.Geode, resource.Ore, 2),
	}
	with := func(extra ...blueprint.Option) []blueprint.Option {
		return append(append([]blueprint.Option(nil), full...), extra...)
	}

	cases := []struct {
		name string
		id   int
		opts []blueprint.Option
		want error
	}{
		{"negative id", -1, full, blueprint.ErrNegativeID},
		{"nil option", 1, with(nil), blueprint.ErrNilOption},
		{"unknown robot", 1, with(blueprint.WithCost(resource.Kind(9), resource.Ore, 1)), blueprint.ErrUnknownKind},
		{"unknown resource", 1, with(blueprint.WithCost(resource.Ore, resource.Kind(4), 1)), blueprint.ErrUnknownKind},
		{"negative cost", 1, with(blueprint.WithCost(resource.Geode, resource.Obsidian, -7)), blueprint.ErrNegativeCost},
		{"huge cost", 1, with(blueprint.WithCost(resource.Geode, resource.Obsidian, blueprint.MaxCost+1)), blueprint.ErrCostOutOfRange},
		{"duplicate", 1, with(blueprint.WithCost(resource.Ore, resource.Ore, 5)), blueprint.ErrDuplicateCost},
		{"free robot", 1, full[:3], blueprint.ErrEmptyCost},
		{"explicit zero only", 1, with(blueprint.WithCost(resource.Ore, resource.Clay, 0))[1:], blueprint.ErrEmptyCost},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bp, err := blueprint.New(tc.id, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, bp)
		})
	}
}

func TestNew_ZeroIDAndBoundaryCost(t *testing.T) {
	bp, err := blueprint.New(0,
		blueprint.WithCost(resource.Ore, resource.Ore, blueprint.MaxCost),
		blueprint.WithCost(resource.Clay, resource.Ore, 1),
		blueprint.WithCost(resource.Obsidian, resource.Clay, 1),
		blueprint.WithCost(resource.Geode, resource.Obsidian, 1),
	)
	require.NoError(t, err)
	require.Equal(t, 0, bp.ID())
	require.Equal(t, uint16(blueprint.MaxCost), bp.Cost(resource.Ore).Get(resource.Ore))
}

// ------------------------------------------------------------------------
// 2. Cost table and derived ceilings.
// ------------------------------------------------------------------------

func TestClassic_CostTable(t *testing.T) {
	bp, err := blueprint.Classic(1, 4, 2, 3, 14, 2, 7)
	require.NoError(t, err)

	require.Equal(t, 1, bp.ID())
	require.Equal(t, resource.Amounts{4, 0, 0, 0}, bp.Cost(resource.Ore))
	require.Equal(t, resource.Amounts{2, 0, 0, 0}, bp.Cost(resource.Clay))
	require.Equal(t, resource.Amounts{3, 14, 0, 0}, bp.Cost(resource.Obsidian))
	require.Equal(t, resource.Amounts{2, 0, 7, 0}, bp.Cost(resource.Geode))

	// Unknown kinds read as zero cost rather than panicking.
	require.True(t, bp.Cost(resource.Kind(200)).IsZero())
}

func TestMaxSpend_ColumnMaxima(t *testing.T) {
	bp := blueprint.MustClassic(2, 2, 3, 3, 8, 3, 12)

	require.Equal(t, uint16(3), bp.MaxSpend(resource.Ore))
	require.Equal(t, uint16(8), bp.MaxSpend(resource.Clay))
	require.Equal(t, uint16(12), bp.MaxSpend(resource.Obsidian))

	// The terminal resource is never spent.
	require.Equal(t, uint16(0), bp.MaxSpend(resource.Geode))
	require.Equal(t, uint16(0), bp.MaxSpend(resource.Kind(42)))
}

// TestMaxSpend_TerminalCostIgnored builds a table where some robot costs
// geodes; the terminal ceiling must still be zero.
func TestMaxSpend_TerminalCostIgnored(t *testing.T) {
	bp, err := blueprint.New(3,
		blueprint.WithCost(resource.Ore, resource.Ore, 2),
		blueprint.WithCost(resource.Clay, resource.Geode, 1),
		blueprint.WithCost(resource.Obsidian, resource.Ore, 1),
		blueprint.WithCost(resource.Geode, resource.Obsidian, 1),
	)
	require.NoError(t, err)
	require.Equal(t, uint16(0), bp.MaxSpend(resource.Geode))
	require.Equal(t, uint16(2), bp.MaxSpend(resource.Ore))
}

// ------------------------------------------------------------------------
// 3. Reachability closure.
// ------------------------------------------------------------------------

func TestReachable_ClassicAllReachable(t *testing.T) {
	bp := blueprint.MustClassic(1, 4, 2, 3, 14, 2, 7)
	for _, k := range resource.Kinds() {
		require.True(t, bp.Reachable(k), "robot %v", k)
	}
	require.False(t, bp.Reachable(resource.Kind(5)))
}

// TestReachable_Cycle covers a table where clay and obsidian robots fund
// each other: neither can ever be built, so geodes are unreachable too.
func TestReachable_Cycle(t *testing.T) {
	bp, err := blueprint.New(1,
		blueprint.WithCost(resource.Ore, resource.Ore, 2),
		blueprint.WithCost(resource.Clay, resource.Obsidian, 1),
		blueprint.WithCost(resource.Obsidian, resource.Clay, 1),
		blueprint.WithCost(resource.Geode, resource.Ore, 1),
		blueprint.WithCost(resource.Geode, resource.Obsidian, 1),
	)
	require.NoError(t, err)

	require.True(t, bp.Reachable(resource.Ore))
	require.False(t, bp.Reachable(resource.Clay))
	require.False(t, bp.Reachable(resource.Obsidian))
	require.False(t, bp.Reachable(resource.Geode))
}

// TestReachable_OutOfOrderChain declares a chain whose unlock order is not
// the kind order (geode robots fund obsidian robots), so the closure needs
// more than one pass.
func TestReachable_OutOfOrderChain(t *testing.T) {
	bp, err := blueprint.New(1,
		blueprint.WithCost(resource.Ore, resource.Ore, 1),
		blueprint.WithCost(resource.Obsidian, resource.Geode, 1),
		blueprint.WithCost(resource.Geode, resource.Clay, 1),
		blueprint.WithCost(resource.Clay, resource.Ore, 1),
	)
	require.NoError(t, err)
	for _, k := range resource.Kinds() {
		require.True(t, bp.Reachable(k), "robot %v", k)
	}
}

func TestMustClassic_PanicsOnInvalid(t *testing.T) {
	require.Panics(t, func() { blueprint.MustClassic(1, -4, 2, 3, 14, 2, 7) })
}

// TestReachableFrom_StockUnlocksCycle: a held obsidian pays for the first
// clay robot, which then funds obsidian robots and, through them, geodes.
func TestReachableFrom_StockUnlocksCycle(t *testing.T) {
	bp, err := blueprint.New(1,
		blueprint.WithCost(resource.Ore, resource.Ore, 2),
		blueprint.WithCost(resource.Clay, resource.Obsidian, 1),
		blueprint.WithCost(resource.Obsidian, resource.Clay, 1),
		blueprint.WithCost(resource.Geode, resource.Ore, 1),
		blueprint.WithCost(resource.Geode, resource.Obsidian, 1),
	)
	require.NoError(t, err)

	robots := resource.Amounts{1, 0, 0, 0}
	none := bp.ReachableFrom(resource.Amounts{}, robots)
	require.Equal(t, [resource.NumKinds]bool{true, false, false, false}, none)

	withObsidian := bp.ReachableFrom(resource.Amounts{0, 0, 1, 0}, robots)
	require.Equal(t, [resource.NumKinds]bool{true, true, true, true}, withObsidian)

	// No robots at all and no stock: nothing is ever produced.
	require.Equal(t, [resource.NumKinds]bool{}, bp.ReachableFrom(resource.Amounts{}, resource.Amounts{}))
}
