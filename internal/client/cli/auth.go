package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for a username, email and password and attempts to create
// a new account. On success the session is persisted by the auth slice and
// the user is greeted; on failure the slice error is shown.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Signup(ctx, username, email, password)
	if err != nil {
		printlnFn("Signup failed:", a.auth.Snapshot().Err)
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.Username))
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// auth slice persists the session and the favorites list is refreshed so it
// reflects the logged-in user.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, username, password)
	if err != nil {
		printlnFn("Login failed:", a.auth.Snapshot().Err)
		return err
	}

	if err := a.favorites.Fetch(ctx, user.ID); err != nil {
		a.logger.Warn(ctx, "error loading favorites", "error", err)
	}
	printlnFn(fmt.Sprintf("Welcome back, %s!", user.Username))
	return nil
}

// Logout clears the persisted session and resets auth state to anonymous.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}
