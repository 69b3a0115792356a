// Package core provides the domain logic for cultivation tracking.
//
// This package is the heart of the journal, containing all scoring and
// import logic independent of any storage or transport layer. It can be
// used by CLI tools, services, or tests without modification.
//
// # Architecture
//
// The package is organized around four pure components:
//
//   - Target resolution: merges a grow's explicit target ranges with
//     settings-level defaults ([ResolveTargets]).
//   - Health scoring: aggregates a grow's logs and events into a single
//     0-100 score with penalty explanations ([HealthScore]).
//   - CSV tokenizing: an RFC 4180 quoted-field scanner ([ParseCSV]).
//   - Ingestion: reconstructs Grow and Log entities from a tabular
//     export, deduplicating grows by (species, block) and deriving
//     stable content IDs ([BuildStateFromCSV], [BuildStateFromRows]).
//
// # Determinism
//
// No function here mutates its inputs or keeps state between calls.
// The one ambient dependency, the evaluation instant used for recency
// penalties, is injected through [ScoreInput.Now] so scoring is a pure
// function of its arguments. Import IDs are content-derived, so
// re-importing the same file yields the same ID set, which is what
// makes the caller's full-replace persistence safe to repeat.
package core
