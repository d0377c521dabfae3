// Package db opens the PostgreSQL connection, applies embedded goose
// migrations, and vends the concrete repositories the services run on.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/snapfeed/snapfeed/internal/server/documents"
	"github.com/snapfeed/snapfeed/internal/server/migrations"
	"github.com/snapfeed/snapfeed/internal/server/refreshtokens"
	"github.com/snapfeed/snapfeed/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() (users.Repository, error)
	RefreshTokens() (refreshtokens.Repository, error)
	Documents() (documents.Repository, error)
	Close() error
}

type PostgresRepositoryManager struct {
	db *sql.DB
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	return &PostgresRepositoryManager{db: db}, nil
}

// gooseUpContext is a seam for testing RunMigrations.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and applies them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *PostgresRepositoryManager) Users() (users.Repository, error) {
	return users.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) RefreshTokens() (refreshtokens.Repository, error) {
	return refreshtokens.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Documents() (documents.Repository, error) {
	return documents.NewPostgresRepository(m.db)
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}
