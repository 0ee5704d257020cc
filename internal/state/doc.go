// Package state holds the load state of the collections shown by the UI.
//
// # Overview
//
// Each view that fetches a collection (the book list, a book's reviews) owns
// exactly one List. The list starts in Loading, moves once to Ready or Error,
// and in Ready accepts appends from the matching create form.
//
//	Loading ──Resolve──→ Ready ──Append──→ Ready
//	   │
//	   └──────Fail─────→ Error
//
// # Ownership
//
// Lists are mutated only from the Bubble Tea update loop, so they carry no
// lock. Forms never touch a list directly: they emit a created message and
// the owning view appends.
//
// # Defensive Copying
//
// Resolve copies its input and Items returns a copy, so callers can keep or
// modify the slices they pass around without aliasing the stored data.
package state
