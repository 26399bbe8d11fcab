package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no record matches a well-formed id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned when an id is not in the store's id format.
	ErrInvalidID = errors.New("invalid id")
	// ErrUsernameTaken is returned when a user write collides with an existing username.
	ErrUsernameTaken = errors.New("username already exists")
)

// Violation is a single failed schema constraint.
// swagger:model Violation
type Violation struct {
	// JSON path of the offending field
	// example: company.contactEmail
	Field string `json:"field"`

	// Constraint that failed
	// example: required
	Rule string `json:"rule"`
}

// ValidationError is returned when a candidate document does not satisfy its schema.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Rule))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
