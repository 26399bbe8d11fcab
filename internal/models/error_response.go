package models

// ErrorResponse is the body of every non-2xx response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: job not found
	Error string `json:"error"`

	// Schema violations, present on validation failures
	Violations []Violation `json:"violations,omitempty"`
}

// HealthResponse is the body of the health endpoint.
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
}
