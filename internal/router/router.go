// Package router maps HTTP methods and paths onto the request handlers.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/job-listings/internal/handlers"
	"github.com/sbilibin2017/job-listings/internal/middlewares"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// JobService is everything the job routes need.
type JobService interface {
	handlers.JobLister
	handlers.JobGetter
	handlers.JobCreator
	handlers.JobUpdater
	handlers.JobDeleter
}

// UserService is everything the user routes need.
type UserService interface {
	handlers.UserLister
	handlers.UserGetter
	handlers.UserCreator
	handlers.UserUpdater
	handlers.UserDeleter
}

// Config wires the router. Jobs and Users are required; the rest is optional.
type Config struct {
	Jobs  JobService
	Users UserService

	// Logger enables request logging.
	Logger *zap.SugaredLogger
	// DB runs updates inside a transaction when set.
	DB *sqlx.DB
	// Health enables GET /health.
	Health handlers.Pinger
	// SwaggerURL enables the Swagger UI, pointing it at the given doc.json.
	SwaggerURL string
}

// New builds the HTTP handler for the service.
func New(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(middlewares.LoggingMiddleware(cfg.Logger))
	}

	// Updates check the id before any transaction is opened.
	update := func(h http.HandlerFunc) http.Handler {
		chain := []func(http.Handler) http.Handler{middlewares.ValidIDMiddleware("id")}
		if cfg.DB != nil {
			chain = append(chain, middlewares.TxMiddleware(cfg.DB))
		}
		return chi.Chain(chain...).Handler(h)
	}

	r.Route("/api/jobs", func(r chi.Router) {
		r.Get("/", handlers.NewListJobsHandler(cfg.Jobs))
		r.Post("/", handlers.NewCreateJobHandler(cfg.Jobs))
		r.Get("/{id}", handlers.NewGetJobHandler(cfg.Jobs))
		r.Method(http.MethodPut, "/{id}", update(handlers.NewUpdateJobHandler(cfg.Jobs)))
		r.Delete("/{id}", handlers.NewDeleteJobHandler(cfg.Jobs))
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/", handlers.NewListUsersHandler(cfg.Users))
		r.Post("/", handlers.NewCreateUserHandler(cfg.Users))
		r.Get("/{id}", handlers.NewGetUserHandler(cfg.Users))
		r.Method(http.MethodPut, "/{id}", update(handlers.NewUpdateUserHandler(cfg.Users)))
		r.Delete("/{id}", handlers.NewDeleteUserHandler(cfg.Users))
	})

	if cfg.Health != nil {
		r.Get("/health", handlers.NewHealthHandler(cfg.Health))
	}

	if cfg.SwaggerURL != "" {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(cfg.SwaggerURL)))
	}

	return r
}
