// Package common defines shared sentinel errors used across the RecipeBox
// store and state layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrorNotFound is returned when a user or recipe does not exist.
	ErrorNotFound = errors.New("not found")

	// ErrorConflict is returned on signup when a username or email is taken.
	ErrorConflict = errors.New("already exists")
)
