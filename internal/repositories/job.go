package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/job-listings/internal/models"
)

const jobsTable = "jobs"

// JobRepository stores jobs in the jobs collection.
type JobRepository struct {
	docs collection
}

// NewJobRepository creates a JobRepository. txGetter may be nil; when it
// returns a transaction for a context, statements run inside it.
func NewJobRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *JobRepository {
	return &JobRepository{docs: collection{db: db, txGetter: txGetter, table: jobsTable}}
}

// List returns every job in creation order.
func (r *JobRepository) List(ctx context.Context) ([]models.JobRecord, error) {
	rows, err := r.docs.list(ctx)
	if err != nil {
		return nil, err
	}

	jobs := make([]models.JobRecord, 0, len(rows))
	for i := range rows {
		rec, err := decodeJob(&rows[i])
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *rec)
	}
	return jobs, nil
}

// GetByID returns the job with the given id. Malformed ids cannot match any
// job and are reported as models.ErrNotFound.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.JobRecord, error) {
	row, err := r.docs.get(ctx, id, false)
	if err != nil {
		if errors.Is(err, models.ErrInvalidID) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return decodeJob(row)
}

// GetForUpdate returns the job with the given id, locking it when a
// transaction is active. Malformed ids yield models.ErrInvalidID.
func (r *JobRepository) GetForUpdate(ctx context.Context, id string) (*models.JobRecord, error) {
	row, err := r.docs.get(ctx, id, true)
	if err != nil {
		return nil, err
	}
	return decodeJob(row)
}

// Create inserts job and returns it with its store-assigned id.
func (r *JobRepository) Create(ctx context.Context, job models.Job) (*models.JobRecord, error) {
	doc, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("encode job: %w", err)
	}
	row, err := r.docs.insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	return decodeJob(row)
}

// Replace overwrites the document of the job with the given id.
func (r *JobRepository) Replace(ctx context.Context, id string, job models.Job) (*models.JobRecord, error) {
	doc, err := json.Marshal(job)
	if err != nil {
		return nil, fmt.Errorf("encode job: %w", err)
	}
	row, err := r.docs.replace(ctx, id, doc)
	if err != nil {
		return nil, err
	}
	return decodeJob(row)
}

// Delete removes the job with the given id.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}

func decodeJob(row *documentRow) (*models.JobRecord, error) {
	rec := &models.JobRecord{
		ID:        row.ID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if err := row.Doc.Unmarshal(&rec.Job); err != nil {
		return nil, fmt.Errorf("decode job %s: %w", row.ID, err)
	}
	return rec, nil
}
