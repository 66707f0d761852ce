// Package resource defines the fixed, ordered set of resource kinds handled
// by the geodecraft engine, and the fixed-size amount vector used for
// stockpiles, robot counts and robot costs.
//
// The kind set is a compile-time constant (NumKinds). Amount vectors are
// plain arrays, so copying one is a register-sized move and a State built
// from them never shares memory with its parent.
//
// Kinds, in order:
//
//	Ore → Clay → Obsidian → Geode
//
// The last kind (Geode) is the terminal resource: its final stockpile is the
// quantity being maximized. Every other kind only matters because robots
// cost it.
//
// Width:
//   - Amounts are uint16. With horizons capped at search.MaxHorizon (64)
//     a robot count never exceeds 65 and a stockpile grown from zero never
//     exceeds 65·64, far below 65535. Callers that start from arbitrary
//     stockpiles are guarded by state.State.Headroom.
package resource
