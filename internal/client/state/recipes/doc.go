// Package recipes implements the recipe collection slice: the full recipe
// list fetched from the entity store, a derived read-only filtered view for
// the active search term, and the currently viewed recipe.
//
// Asynchronous actions are blocking methods that mirror a
// pending/fulfilled/rejected lifecycle: on entry the loading flag is raised
// and the error slot cleared; a failure records the message in the error
// slot and is also returned to the caller. Create, update and delete follow
// the narrower lifecycle of the application they model: they do not touch
// the loading flag, and a failure leaves the slice untouched.
package recipes
