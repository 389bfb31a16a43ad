// Package timer implements the cooking-timer slice: a countdown bound to a
// single recipe. It is purely synchronous state; the caller drives it with
// Tick (typically from a time.Ticker).
package timer

import "sync"

// State is the observable timer state.
type State struct {
	// ActiveRecipeID is the recipe being timed, empty when none.
	ActiveRecipeID string
	// TimeLeft is the remaining time in seconds.
	TimeLeft int
	// Active reports whether the countdown is running (false when paused
	// or reset).
	Active bool
}

// Slice owns the timer state.
type Slice struct {
	mu    sync.Mutex
	state State
}

func New() *Slice {
	return &Slice{}
}

// Snapshot returns a copy of the current state.
func (s *Slice) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start binds the timer to recipeID and begins counting down from seconds.
// Starting over an already-running timer replaces it.
func (s *Slice) Start(recipeID string, seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{ActiveRecipeID: recipeID, TimeLeft: seconds, Active: true}
}

// Pause suspends the countdown without losing the remaining time.
func (s *Slice) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Active = false
}

// Resume continues a paused countdown, if there is time left.
func (s *Slice) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.ActiveRecipeID != "" && s.state.TimeLeft > 0 {
		s.state.Active = true
	}
}

// Reset clears the timer completely.
func (s *Slice) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
}

// Tick advances the countdown by one second. It does nothing when the timer
// is paused or already at zero; TimeLeft never goes negative.
func (s *Slice) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Active && s.state.TimeLeft > 0 {
		s.state.TimeLeft--
	}
}

// Done reports whether a started countdown has reached zero.
func (s *Slice) Done() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveRecipeID != "" && s.state.TimeLeft == 0
}
