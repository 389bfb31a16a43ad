// Package localstore provides the client's durable local storage: a small
// keyed BLOB cache in SQLite that survives process restarts.
//
// The cache holds JSON snapshots under well-known keys (the current session
// user, the last resolved favorites list). It is a cache, not a source of
// truth; the entity store always wins on conflict.
package localstore
