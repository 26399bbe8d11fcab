package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/job-listings/internal/models"
)

const (
	usersTable = "users"

	// pgUniqueViolation is the SQLSTATE raised by the users_username_key index.
	pgUniqueViolation = "23505"
)

// UserRepository stores users in the users collection.
type UserRepository struct {
	docs collection
}

// NewUserRepository creates a UserRepository. See NewJobRepository for txGetter.
func NewUserRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserRepository {
	return &UserRepository{docs: collection{db: db, txGetter: txGetter, table: usersTable}}
}

func (r *UserRepository) List(ctx context.Context) ([]models.UserRecord, error) {
	rows, err := r.docs.list(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]models.UserRecord, 0, len(rows))
	for i := range rows {
		rec, err := decodeUser(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, *rec)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.UserRecord, error) {
	row, err := r.docs.get(ctx, id, false)
	if err != nil {
		if errors.Is(err, models.ErrInvalidID) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return decodeUser(row)
}

func (r *UserRepository) GetForUpdate(ctx context.Context, id string) (*models.UserRecord, error) {
	row, err := r.docs.get(ctx, id, true)
	if err != nil {
		return nil, err
	}
	return decodeUser(row)
}

// Create inserts user. A duplicate username yields models.ErrUsernameTaken.
func (r *UserRepository) Create(ctx context.Context, user models.User) (*models.UserRecord, error) {
	doc, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	row, err := r.docs.insert(ctx, doc)
	if err != nil {
		return nil, usernameConflict(err)
	}
	return decodeUser(row)
}

// Replace overwrites the document of the user with the given id.
// A duplicate username yields models.ErrUsernameTaken.
func (r *UserRepository) Replace(ctx context.Context, id string, user models.User) (*models.UserRecord, error) {
	doc, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	row, err := r.docs.replace(ctx, id, doc)
	if err != nil {
		return nil, usernameConflict(err)
	}
	return decodeUser(row)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}

func usernameConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return models.ErrUsernameTaken
	}
	return err
}

func decodeUser(row *documentRow) (*models.UserRecord, error) {
	rec := &models.UserRecord{
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if err := row.Doc.Unmarshal(&rec.User); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", row.ID, err)
	}
	return rec, nil
}
