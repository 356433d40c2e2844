// Package postgres implements the store.Store interface backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/harborview/lens/internal/model"
	"github.com/harborview/lens/internal/store"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// PostgresStore implements store.Store backed by a PostgreSQL database.
// It shares the tracker's database: lens owns only the saved_searches table;
// projects and users are read from tables managed by the host app.
type PostgresStore struct {
	db *sql.DB
}

// Compile-time check that PostgresStore implements store.Store.
var _ store.Store = (*PostgresStore)(nil)

// New opens a connection to the PostgreSQL database at the given URL,
// configures the connection pool, and runs any pending migrations.
func New(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func runMigrations(db *sql.DB) error {
	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	dbDriver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: "lens_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("create migration db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) CreateSavedSearch(ctx context.Context, search *model.SavedSearch) error {
	return queryCreateSavedSearch(ctx, s.db, search)
}

func (s *PostgresStore) GetSavedSearch(ctx context.Context, id string) (*model.SavedSearch, error) {
	return queryGetSavedSearch(ctx, s.db, id)
}

func (s *PostgresStore) ListSavedSearches(ctx context.Context) ([]*model.SavedSearch, error) {
	return queryListSavedSearches(ctx, s.db)
}

func (s *PostgresStore) UpdateSavedSearch(ctx context.Context, search *model.SavedSearch) error {
	return queryUpdateSavedSearch(ctx, s.db, search)
}

func (s *PostgresStore) DeleteSavedSearch(ctx context.Context, id string) error {
	return queryDeleteSavedSearch(ctx, s.db, id)
}

func (s *PostgresStore) GetProjects(ctx context.Context) ([]*model.Project, error) {
	return queryGetProjects(ctx, s.db)
}

func (s *PostgresStore) GetUser(ctx context.Context, id string) (*model.User, error) {
	return queryGetUser(ctx, s.db, id)
}
