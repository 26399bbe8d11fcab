package services

import (
	"context"

	"github.com/sbilibin2017/job-listings/internal/logger"
	"github.com/sbilibin2017/job-listings/internal/models"
	"github.com/sbilibin2017/job-listings/internal/validation"
)

//go:generate mockgen -source=job.go -destination=mock_job.go -package=services

const jobResource = "job"

// JobRepository defines storage operations for jobs.
type JobRepository interface {
	List(ctx context.Context) ([]models.JobRecord, error)
	GetByID(ctx context.Context, id string) (*models.JobRecord, error)
	GetForUpdate(ctx context.Context, id string) (*models.JobRecord, error)
	Create(ctx context.Context, job models.Job) (*models.JobRecord, error)
	Replace(ctx context.Context, id string, job models.Job) (*models.JobRecord, error)
	Delete(ctx context.Context, id string) error
}

// JobService implements the job operations behind the HTTP handlers.
type JobService struct {
	repo   JobRepository
	events eventPublisher
}

// NewJobService creates a JobService. kafkaWriter may be nil.
func NewJobService(repo JobRepository, kafkaWriter KafkaWriter) *JobService {
	return &JobService{
		repo:   repo,
		events: eventPublisher{writer: kafkaWriter},
	}
}

// List returns every job.
func (s *JobService) List(ctx context.Context) ([]models.JobRecord, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list jobs", "error", err)
		return nil, err
	}
	return jobs, nil
}

// Get returns the job with the given id or models.ErrNotFound.
func (s *JobService) Get(ctx context.Context, id string) (*models.JobRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates job and stores it. An omitted status defaults to open.
func (s *JobService) Create(ctx context.Context, job models.Job) (*models.JobRecord, error) {
	if job.Status == "" {
		job.Status = models.JobStatusOpen
	}
	if err := validation.Check(job); err != nil {
		logger.Log.Warnw("job rejected", "error", err)
		return nil, err
	}

	rec, err := s.repo.Create(ctx, job)
	if err != nil {
		logger.Log.Errorw("failed to create job", "error", err)
		return nil, err
	}

	s.events.publish(ctx, jobResource, EventCreated, rec.ID)
	return rec, nil
}

// Update merges the non-empty fields of patch onto the stored job, validates
// the result and stores it. Fields absent from patch are left unchanged.
func (s *JobService) Update(ctx context.Context, id string, patch models.Job) (*models.JobRecord, error) {
	current, err := s.repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := current.Job
	if err := mergePatch(&merged, patch); err != nil {
		logger.Log.Errorw("failed to merge job patch", "id", id, "error", err)
		return nil, err
	}
	if err := validation.Check(merged); err != nil {
		logger.Log.Warnw("job update rejected", "id", id, "error", err)
		return nil, err
	}

	rec, err := s.repo.Replace(ctx, current.ID, merged)
	if err != nil {
		logger.Log.Errorw("failed to update job", "id", id, "error", err)
		return nil, err
	}

	s.events.publish(ctx, jobResource, EventUpdated, rec.ID)
	return rec, nil
}

// Delete removes the job with the given id.
func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.publish(ctx, jobResource, EventDeleted, id)
	return nil
}
