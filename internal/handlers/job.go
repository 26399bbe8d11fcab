package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/job-listings/internal/models"
)

//go:generate mockgen -source=job.go -destination=mock_job.go -package=handlers

const jobResource = "job"

// JobLister lists stored jobs.
type JobLister interface {
	List(ctx context.Context) ([]models.JobRecord, error)
}

// JobGetter fetches a job by id.
type JobGetter interface {
	Get(ctx context.Context, id string) (*models.JobRecord, error)
}

// JobCreator creates jobs.
type JobCreator interface {
	Create(ctx context.Context, job models.Job) (*models.JobRecord, error)
}

// JobUpdater applies partial updates to jobs.
type JobUpdater interface {
	Update(ctx context.Context, id string, patch models.Job) (*models.JobRecord, error)
}

// JobDeleter deletes jobs.
type JobDeleter interface {
	Delete(ctx context.Context, id string) error
}

// NewListJobsHandler returns an HTTP handler listing every job.
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Success 200 {array} models.JobResponse
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/jobs [get]
func NewListJobsHandler(svc JobLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, jobResource, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewJobListResponse(jobs))
	}
}

// NewGetJobHandler returns an HTTP handler fetching a single job.
// @Summary Get a job
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.JobResponse
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/jobs/{id} [get]
func NewGetJobHandler(svc JobGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, jobResource, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewJobResponse(*job))
	}
}

// NewCreateJobHandler returns an HTTP handler creating a job.
// Status defaults to "open" when omitted.
// @Summary Create a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body models.Job true "Job"
// @Success 201 {object} models.JobResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body or schema violation"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/jobs [post]
func NewCreateJobHandler(svc JobCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.Job
		if !decodeBody(w, r, &req) {
			return
		}

		job, err := svc.Create(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, jobResource, err)
			return
		}
		writeJSON(w, http.StatusCreated, models.NewJobResponse(*job))
	}
}

// NewUpdateJobHandler returns an HTTP handler partially updating a job.
// Only the supplied fields change; company fields merge individually.
// @Summary Update a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param job body models.Job true "Fields to update"
// @Success 200 {object} models.JobResponse
// @Failure 400 {object} models.ErrorResponse "Invalid id, request body or schema violation"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/jobs/{id} [put]
func NewUpdateJobHandler(svc JobUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		var patch models.Job
		if !decodeBody(w, r, &patch) {
			return
		}

		job, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, r, jobResource, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewJobResponse(*job))
	}
}

// NewDeleteJobHandler returns an HTTP handler deleting a job.
// @Summary Delete a job
// @Tags jobs
// @Param id path string true "Job ID"
// @Success 204 "Deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/jobs/{id} [delete]
func NewDeleteJobHandler(svc JobDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, r, jobResource, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
