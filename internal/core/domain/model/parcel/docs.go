// Package parcel provides the Package aggregate of the tracking domain and the
// rules that govern its lifecycle.
//
// The package includes:
//   - Package: the aggregate root holding identity, tracking number, parties and history
//   - Status: the five lifecycle states and their boundary codes
//   - TransitionTable: the fixed set of allowed status moves
//   - StatusHistory: the immutable record appended on every status change
//
// Key business rules:
//   - A package starts in Created with an empty history
//   - Status only moves along TransitionTable; Accepted and Cancelled are final
//   - Every move appends exactly one StatusHistory entry holding the state that was left
//   - Requesting the current status is a no-op and records nothing
package parcel
