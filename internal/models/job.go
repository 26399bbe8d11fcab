package models

import "time"

// Job statuses.
const (
	JobStatusOpen   = "open"
	JobStatusClosed = "closed"
)

// Company is the employer sub-record embedded in every job.
type Company struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"required"`
	ContactPhone string `json:"contactPhone" validate:"required"`
}

// Job is the client-settable document of a job listing.
// swagger:model Job
type Job struct {
	// required: true
	// example: Backend Engineer
	Title string `json:"title" validate:"required"`

	// required: true
	// example: Full-Time
	Type string `json:"type" validate:"required"`

	// required: true
	Description string `json:"description" validate:"required"`

	Company Company `json:"company"`

	// required: true
	Location string `json:"location" validate:"required"`

	// required: true
	Salary string `json:"salary" validate:"required"`

	// example: 10/09/2020
	PostedDate string `json:"postedDate"`

	// example: open
	Status string `json:"status" validate:"omitempty,oneof=open closed"`
}

// JobRecord is a job as persisted in the jobs collection.
type JobRecord struct {
	ID string
	Job
	CreatedAt time.Time
	UpdatedAt time.Time
}

// JobResponse is the wire representation of a stored job.
// swagger:model JobResponse
type JobResponse struct {
	ID string `json:"id"`
	Job
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewJobResponse shapes a stored job for the API.
func NewJobResponse(rec JobRecord) JobResponse {
	return JobResponse{
		ID:        rec.ID,
		Job:       rec.Job,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// NewJobListResponse shapes a list of stored jobs. It never returns nil so the
// list is always encoded as a JSON array.
func NewJobListResponse(recs []JobRecord) []JobResponse {
	resp := make([]JobResponse, 0, len(recs))
	for _, rec := range recs {
		resp = append(resp, NewJobResponse(rec))
	}
	return resp
}
