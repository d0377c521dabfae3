package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"

	"github.com/snapfeed/snapfeed/internal/server/documents"
	"github.com/snapfeed/snapfeed/internal/server/refreshtokens"
	"github.com/snapfeed/snapfeed/internal/server/users"
)

func newManager(t *testing.T) *PostgresRepositoryManager {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &PostgresRepositoryManager{db: db}
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	m := newManager(t)

	u, err := m.Users()
	if err != nil {
		t.Fatalf("Users() error: %v", err)
	}
	var _ users.Repository = u

	rt, err := m.RefreshTokens()
	if err != nil {
		t.Fatalf("RefreshTokens() error: %v", err)
	}
	var _ refreshtokens.Repository = rt

	d, err := m.Documents()
	if err != nil {
		t.Fatalf("Documents() error: %v", err)
	}
	var _ documents.Repository = d
}

func TestRunMigrations_Success(t *testing.T) {
	m := newManager(t)

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	if err := m.RunMigrations(context.Background()); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	m := newManager(t)

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	if err := m.RunMigrations(context.Background()); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
