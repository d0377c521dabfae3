package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/snapfeed/snapfeed/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Get(ctx context.Context, collection, id string) (*Document, error) {

	query :=
		`SELECT id, fields FROM documents
		 WHERE collection = $1 AND id = $2
		 `

	doc := &Document{}
	err := r.db.QueryRowContext(ctx, query, collection, id).Scan(&doc.ID, &doc.Fields)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return doc, nil
}

// Set writes a document. With merge=true existing fields not present in the
// new payload are kept (jsonb concatenation), otherwise the whole fields
// object is replaced. Either way the write upserts.
func (r *PostgresRepository) Set(ctx context.Context, collection, id string, fields []byte, merge bool) error {

	var query string
	if merge {
		query =
			`INSERT INTO documents (collection, id, fields)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (collection, id)
			 DO UPDATE SET fields = documents.fields || EXCLUDED.fields, updated_at = now()
			 `
	} else {
		query =
			`INSERT INTO documents (collection, id, fields)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (collection, id)
			 DO UPDATE SET fields = EXCLUDED.fields, updated_at = now()
			 `
	}

	if _, err := r.db.ExecContext(ctx, query, collection, id, fields); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Add(ctx context.Context, collection string, fields []byte) (string, error) {

	id := uuid.NewString()

	query :=
		`INSERT INTO documents (collection, id, fields)
         VALUES ($1, $2, $3)
		 `

	if _, err := r.db.ExecContext(ctx, query, collection, id, fields); err != nil {
		return "", fmt.Errorf("error performing sql request: %w", err)
	}

	return id, nil
}

// List returns up to limit documents of the collection, newest first.
// The order is what Watch snapshots deliver to subscribers.
func (r *PostgresRepository) List(ctx context.Context, collection string, filter Filter, limit int) ([]*Document, error) {

	query :=
		`SELECT id, fields FROM documents
		 WHERE collection = $1
		 `
	args := []any{collection}

	if !filter.IsZero() {
		query += ` AND fields->>$2 = $3`
		args = append(args, filter.Field, filter.Value)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, id LIMIT %d`, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		doc := &Document{}
		if err := rows.Scan(&doc.ID, &doc.Fields); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return docs, nil
}
