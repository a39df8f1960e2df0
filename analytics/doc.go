// Package analytics computes triadic structure metrics over a core.Graph:
// triad counts, triangle counts, transitivity, and per-node clustering
// coefficients.
//
// The triangle-based routines work on powers of the binary adjacency
// matrix and delegate the multiplication to an injected Multiplier
// capability. The default GonumMultiplier runs on gonum/mat, but the
// routines are agnostic to whether the capability is CPU, GPU, or remote.
// That also makes them the only suspension points in this module: they
// block on the multiplier and honor its context.
//
// Conventions
//
//   - Undirected metrics use the undirected degree; directed metrics use
//     in·out products (triads) and in+out degrees (clustering).
//   - trace(A³) counts each undirected triangle six times and each
//     directed triangle three times.
//
// Errors
//
//   - ErrGraphNil   if the graph pointer is nil.
//   - ErrMultiplier if the capability is missing or fails; the underlying
//     failure is wrapped.
package analytics
