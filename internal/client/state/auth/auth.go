// Package auth implements the session slice: the current user, the
// login/signup/logout lifecycle, and persistence of the session to durable
// local storage so it survives restarts.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/recipebox/internal/client/localstore"
	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/models"
)

// Status is the tagged authentication state. It replaces the usual
// "isAuthenticated bool plus nullable user" pair: a user is present exactly
// when Status is StatusAuthenticated.
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
)

// API is the part of the entity store this slice talks to.
type API interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Signup(ctx context.Context, username, email, password string) (*models.User, error)
}

// State is the observable slice state.
type State struct {
	Status Status
	// User is set exactly when Status is StatusAuthenticated.
	User *models.User
	// Err holds the message of the last failed login/signup until dismissed
	// with ClearError.
	Err string
}

// Slice owns the session state.
type Slice struct {
	mu      sync.Mutex
	api     API
	storage localstore.Repository
	logger  logging.Logger
	state   State
}

func New(api API, storage localstore.Repository, logger logging.Logger) *Slice {
	return &Slice{
		api:     api,
		storage: storage,
		logger:  logger,
		state:   State{Status: StatusAnonymous},
	}
}

// Rehydrate restores a previously persisted session, if any. Call once at
// startup. A missing key leaves the slice anonymous; a corrupt value is
// treated the same (and logged), never as an error to the caller.
func (s *Slice) Rehydrate(ctx context.Context) error {
	data, err := s.storage.Get(ctx, localstore.KeyUser)
	if err != nil {
		return fmt.Errorf("failed to read persisted session: %w", err)
	}
	if data == nil {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.logger.Warn(ctx, "discarding corrupt persisted session", "error", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = StatusAuthenticated
	s.state.User = &user
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *Slice) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Status: s.state.Status,
		User:   s.state.User.Clone(),
		Err:    s.state.Err,
	}
}

// Login authenticates against the store. On success the session is
// persisted durably and the slice becomes authenticated; on failure the
// message lands in the error slot and the slice returns to anonymous.
func (s *Slice) Login(ctx context.Context, username, password string) (*models.User, error) {
	s.begin()

	user, err := s.api.Login(ctx, username, password)
	if err == nil {
		err = s.persist(ctx, user)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Status = StatusAnonymous
		s.state.Err = err.Error()
		s.logger.Error(ctx, "login failed", "username", username, "error", err)
		return nil, err
	}
	s.state.Status = StatusAuthenticated
	s.state.User = user.Clone()
	return user, nil
}

// Signup registers a new account and, like the application it models,
// establishes an authenticated session with the new user right away.
func (s *Slice) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	s.begin()

	user, err := s.api.Signup(ctx, username, email, password)
	if err == nil {
		err = s.persist(ctx, user)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state.Status = StatusAnonymous
		s.state.Err = err.Error()
		s.logger.Error(ctx, "signup failed", "username", username, "error", err)
		return nil, err
	}
	s.state.Status = StatusAuthenticated
	s.state.User = user.Clone()
	return user, nil
}

// Logout clears the persisted session and resets the slice to anonymous.
// It always succeeds; a storage failure is logged and swallowed.
func (s *Slice) Logout(ctx context.Context) {
	if err := s.storage.Delete(ctx, localstore.KeyUser); err != nil {
		s.logger.Error(ctx, "failed to clear persisted session", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Status: StatusAnonymous}
}

// ClearError dismisses the error slot.
func (s *Slice) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Err = ""
}

func (s *Slice) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Status = StatusAuthenticating
	s.state.Err = ""
}

func (s *Slice) persist(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.storage.Set(ctx, localstore.KeyUser, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
