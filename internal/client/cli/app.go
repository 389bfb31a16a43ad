package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/recipebox/internal/client/config"
	"github.com/dmitrijs2005/recipebox/internal/client/localstore"
	"github.com/dmitrijs2005/recipebox/internal/client/state/auth"
	"github.com/dmitrijs2005/recipebox/internal/client/state/favorites"
	"github.com/dmitrijs2005/recipebox/internal/client/state/recipes"
	"github.com/dmitrijs2005/recipebox/internal/client/state/timer"
	"github.com/dmitrijs2005/recipebox/internal/logging"
	"github.com/dmitrijs2005/recipebox/internal/models"
	"github.com/dmitrijs2005/recipebox/internal/store"

	_ "modernc.org/sqlite"
)

// App wires the entity store, the local cache and the four state slices
// behind the REPL.
type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	store     *store.Store
	auth      *auth.Slice
	recipes   *recipes.Slice
	favorites *favorites.Slice
	timer     *timer.Slice

	reader *bufio.Reader
}

// NewApp builds the composition root: local cache database, entity store,
// slices, and rehydrated session/favorites state.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, cache, err := localstore.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	st := store.New(store.WithLatency(c.LatencyMin, c.LatencyMax))

	a := &App{
		config:    c,
		logger:    logger,
		db:        db,
		store:     st,
		auth:      auth.New(st, cache, logger),
		recipes:   recipes.New(st, logger),
		favorites: favorites.New(st, cache, logger),
		timer:     timer.New(),
		reader:    bufio.NewReader(os.Stdin),
	}

	if err := a.auth.Rehydrate(ctx); err != nil {
		logger.Error(ctx, "error restoring session", "error", err)
		_ = db.Close()
		return nil, err
	}
	if err := a.favorites.Rehydrate(ctx); err != nil {
		logger.Error(ctx, "error restoring favorites", "error", err)
		_ = db.Close()
		return nil, err
	}

	return a, nil
}

// Run starts the timer ticker and enters the REPL. It returns when the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.StartTimerTicker(ctx, time.Second)

	printlnFn("RecipeBox CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the local database handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.auth.Snapshot().Status == auth.StatusAuthenticated
}

// sessionUser returns the authenticated user, or nil when anonymous.
func (a *App) sessionUser() *models.User {
	st := a.auth.Snapshot()
	if st.Status != auth.StatusAuthenticated {
		return nil
	}
	return st.User
}

func (a *App) getStatus() string {
	if u := a.sessionUser(); u != nil {
		return u.Username
	}
	return "guest"
}
