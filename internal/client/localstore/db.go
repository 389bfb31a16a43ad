package localstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/recipebox/internal/client/localstore/migrations"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies the embedded schema migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if necessary) the local cache database at dsn,
// applies migrations, and returns a ready Repository together with the
// underlying handle so the caller can close it.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open local database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, NewSQLiteRepository(db), nil
}
