// Package services provides domain services that orchestrate business logic
// spanning the Order aggregate and its status event ledger. It implements
// behavior that doesn't naturally belong to a single entity.
//
// The package includes:
//   - StatusProjector: Derives the projected latest status from the ledger
//     and verifies persisted projections against it
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple entities following Domain-Driven Design principles.
package services
