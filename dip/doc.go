// Package dip holds the types shared by the dependency inversion examples:
// a Person, the kind of a Relationship and the generic Triplet used as a graph edge.
//
// Subpackages:
//   - bad: a high-level Research component reading the low-level store's internal edge slice
//   - good: the same report written against the RelationshipBrowser abstraction,
//     plus a user persistence service depending on a query abstraction instead of a concrete connection
//   - task: an exercise left for the reader to refactor
package dip
