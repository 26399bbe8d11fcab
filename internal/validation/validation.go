// Package validation checks candidate documents against their schema.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/job-listings/internal/models"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name so violations match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// A zero date validates like an empty string.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(models.Date); ok {
			return d.String()
		}
		return nil
	}, models.Date{})

	return v
}

// Validate checks candidate against the constraints declared in its struct
// tags and returns every violation found. A nil result means the candidate is
// accepted.
func Validate(candidate any) []models.Violation {
	err := validate.Struct(candidate)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.Violation{{Field: "", Rule: err.Error()}}
	}

	violations := make([]models.Violation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, models.Violation{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
		})
	}
	return violations
}

// Check is Validate wrapped as an error.
func Check(candidate any) error {
	if violations := Validate(candidate); len(violations) > 0 {
		return &models.ValidationError{Violations: violations}
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace,
// e.g. "Job.company.name" becomes "company.name".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
