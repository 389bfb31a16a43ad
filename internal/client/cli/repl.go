package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Favorites(ctx context.Context) error
	Favorite(ctx context.Context, id string) error
	Unfavorite(ctx context.Context, id string) error
	Timer(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the RecipeBox CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current user (from statusFn) and accepts commands:
//
//	Always available:
//	  - help             — show available commands
//	  - list             — list recipes
//	  - search <term>    — filter recipes by title or ingredient
//	  - show <id>        — show a single recipe
//	  - timer [<id>|...] — control the cooking timer
//	  - exit | quit      — leave the program
//
//	Not logged in:
//	  - signup           — create an account
//	  - login            — authenticate
//
//	Logged in:
//	  - add              — add a recipe
//	  - edit <id>        — edit a recipe
//	  - delete <id>      — delete a recipe
//	  - favorites        — list favorite recipes
//	  - fav <id>         — add a recipe to favorites
//	  - unfav <id>       — remove a recipe from favorites
//	  - logout           — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rb> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search, show, add, edit, delete, favorites, fav, unfav, timer, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, search, show, timer, signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <recipe id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <recipe id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <recipe id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "favorites":
			_ = a.Favorites(ctx)

		case "fav":
			if len(args) != 1 {
				printlnFn("Usage: fav <recipe id>")
				continue
			}
			_ = a.Favorite(ctx, args[0])

		case "unfav":
			if len(args) != 1 {
				printlnFn("Usage: unfav <recipe id>")
				continue
			}
			_ = a.Unfavorite(ctx, args[0])

		case "timer":
			_ = a.Timer(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
