// Package cli is the interactive front end of RecipeBox: a small REPL that
// wires the entity store, the state slices and the local cache together and
// maps commands onto slice actions.
//
// The package is intentionally thin. All state transitions live in the
// slices; the REPL only gathers input, dispatches, and renders snapshots.
package cli
