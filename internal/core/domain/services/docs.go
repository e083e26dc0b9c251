// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the restaurant system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - DistributionRouter: A domain service for routing order items to
//     preparation areas and aggregating item readiness
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
