package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/job-listings/internal/models"
)

const (
	testJobID  = "5f8d0d55b54764421b7156c3"
	testUserID = "64a1f0c2e4b0a1b2c3d4e5f6"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleJobRecord() *models.JobRecord {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &models.JobRecord{
		ID: testJobID,
		Job: models.Job{
			Title:       "Backend Engineer",
			Type:        "Full-Time",
			Description: "Build APIs",
			Company: models.Company{
				Name:         "Acme",
				ContactEmail: "jobs@acme.io",
				ContactPhone: "555-0100",
			},
			Location: "Remote",
			Salary:   "100k",
			Status:   models.JobStatusOpen,
		},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func sampleUserRecord() *models.UserRecord {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &models.UserRecord{
		ID: testUserID,
		User: models.User{
			Name:             "John Doe",
			Username:         "john_doe",
			Password:         "secret",
			PhoneNumber:      "555-0101",
			Gender:           "male",
			DateOfBirth:      models.NewDate(1990, time.May, 1),
			MembershipStatus: "active",
			Address:          "1 Main St",
		},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}
