// Package store implements the RecipeBox entity store: the single owner of
// the canonical user and recipe collections.
//
// The store stands in for a remote service. Every operation waits a
// uniformly random artificial delay before touching the collections, so
// overlapping calls interleave the way real network round-trips would.
// The delay honors context cancellation; the collections themselves are
// guarded by a mutex that is held only across the actual read or write,
// never across the delay. Ordering between overlapping mutations is
// therefore last-write-wins by design of the simulation.
//
// A Store is constructed explicitly and injected where needed; there is no
// package-level instance. Tests build isolated stores with zero latency.
//
// All returned entities are defensive copies. Mutating a returned value
// never affects the stored collections.
package store
