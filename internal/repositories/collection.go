package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/sbilibin2017/job-listings/internal/logger"
	"github.com/sbilibin2017/job-listings/internal/middlewares"
	"github.com/sbilibin2017/job-listings/internal/models"
)

// documentRow is the storage shape shared by every collection table:
// an opaque id, a JSONB document and store-managed timestamps.
type documentRow struct {
	ID        string         `db:"id"`
	Doc       types.JSONText `db:"doc"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// collection performs document operations against one table.
// Ids are validated before any statement is sent.
type collection struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
	table    string
}

// executor returns the transaction bound to ctx, if any, or the pool.
func (c *collection) executor(ctx context.Context) sqlx.ExtContext {
	if c.txGetter != nil {
		if tx := c.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return c.db
}

func (c *collection) list(ctx context.Context) ([]documentRow, error) {
	query := fmt.Sprintf(`
		SELECT id, doc, created_at, updated_at
		FROM %s
		ORDER BY created_at, id
	`, c.table)

	var rows []documentRow
	err := sqlx.SelectContext(ctx, c.executor(ctx), &rows, query)
	logQuery(ctx, query, nil, err)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.table, err)
	}
	return rows, nil
}

// get loads one document. With lock set the row is held FOR UPDATE until the
// surrounding transaction ends.
func (c *collection) get(ctx context.Context, id string, lock bool) (*documentRow, error) {
	if !models.IsValidID(id) {
		return nil, models.ErrInvalidID
	}

	query := fmt.Sprintf(`
		SELECT id, doc, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, c.table)
	if lock {
		query += " FOR UPDATE"
	}

	id = strings.ToLower(id)
	var row documentRow
	err := sqlx.GetContext(ctx, c.executor(ctx), &row, query, id)
	logQuery(ctx, query, []any{id}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("get %s %s: %w", c.table, id, err)
	}
	return &row, nil
}

func (c *collection) insert(ctx context.Context, doc []byte) (*documentRow, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (doc, created_at, updated_at)
		VALUES ($1::jsonb, NOW(), NOW())
		RETURNING id, doc, created_at, updated_at
	`, c.table)

	var row documentRow
	err := sqlx.GetContext(ctx, c.executor(ctx), &row, query, string(doc))
	logQuery(ctx, query, nil, err)
	if err != nil {
		return nil, fmt.Errorf("insert into %s: %w", c.table, err)
	}
	return &row, nil
}

func (c *collection) replace(ctx context.Context, id string, doc []byte) (*documentRow, error) {
	if !models.IsValidID(id) {
		return nil, models.ErrInvalidID
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET doc = $2::jsonb, updated_at = NOW()
		WHERE id = $1
		RETURNING id, doc, created_at, updated_at
	`, c.table)

	id = strings.ToLower(id)
	var row documentRow
	err := sqlx.GetContext(ctx, c.executor(ctx), &row, query, id, string(doc))
	logQuery(ctx, query, []any{id}, err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("update %s %s: %w", c.table, id, err)
	}
	return &row, nil
}

func (c *collection) delete(ctx context.Context, id string) error {
	if !models.IsValidID(id) {
		return models.ErrInvalidID
	}

	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, c.table)

	id = strings.ToLower(id)
	res, err := c.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(ctx, query, []any{id}, err, "rows_affected", rowsAffected)
	if err != nil {
		return fmt.Errorf("delete from %s %s: %w", c.table, id, err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// logQuery logs a statement on a single line. Document bodies are never logged.
func logQuery(ctx context.Context, query string, args []any, err error, extra ...any) {
	kv := append([]any{
		"request_id", middlewares.RequestIDFromContext(ctx),
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	}, extra...)
	logger.Log.Debugw("query", kv...)
}
