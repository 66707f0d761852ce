// Package evaluate scores a batch of blueprints with the geode search and
// combines the per-blueprint optima into one figure.
//
// Modes:
//   - QualitySum (ModeQualitySum): every blueprint over QualityHorizon
//     (24) minutes; the score is Σ id·geodes.
//   - TopProduct (ModeTopProduct): the first TopN (3) blueprints over
//     ProductHorizon (32) minutes; the score is Π geodes. An empty batch
//     scores 1, the empty product.
//
// Execution:
//
//  1. One search per blueprint, always from state.Initial().
//  2. A fixed pool of Workers goroutines (default GOMAXPROCS, never more
//     than the number of blueprints) pulls blueprint indices from a closed
//     channel. Blueprints are read-only and shared; every search owns its
//     own engine.
//  3. Each worker writes into its own slot of an index-addressed result
//     slice. Aggregation happens after the join, so the outcome does not
//     depend on completion order and equals a sequential run.
//  4. Errors are reported by lowest blueprint index, again independent of
//     scheduling.
//
// Configuration:
//   - Functional options (WithHorizon, WithTopN, WithWorkers,
//     WithSearchOptions, WithOnScored) for library callers.
//   - Config, a YAML run description (LoadConfig / ParseConfig) consumed
//     by Run.
//
// Errors:
//   - ErrNilBlueprint, ErrBadTopN, ErrBadWorkers, ErrOverflow,
//     ErrUnknownMode, ErrBadHorizon; search sentinels pass through unchanged.
//
// Hooks:
//   - OnScored(id, geodes) fires from worker goroutines as each blueprint
//     finishes. It must be safe for concurrent use.
package evaluate
