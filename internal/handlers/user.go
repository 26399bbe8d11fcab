package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/job-listings/internal/models"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=handlers

const userResource = "user"

// UserLister lists stored users.
type UserLister interface {
	List(ctx context.Context) ([]models.UserRecord, error)
}

// UserGetter fetches a user by id.
type UserGetter interface {
	Get(ctx context.Context, id string) (*models.UserRecord, error)
}

// UserCreator creates users.
type UserCreator interface {
	Create(ctx context.Context, user models.User) (*models.UserRecord, error)
}

// UserUpdater applies partial updates to users.
type UserUpdater interface {
	Update(ctx context.Context, id string, patch models.User) (*models.UserRecord, error)
}

// UserDeleter deletes users.
type UserDeleter interface {
	Delete(ctx context.Context, id string) error
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserResponse
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, r, userResource, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewUserListResponse(users))
	}
}

// NewGetUserHandler returns an HTTP handler fetching a single user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, userResource, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewUserResponse(*user))
	}
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body or schema violation"
// @Failure 409 {object} models.ErrorResponse "Username already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.User
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := svc.Create(r.Context(), req)
		if err != nil {
			writeServiceError(w, r, userResource, err)
			return
		}
		writeJSON(w, http.StatusCreated, models.NewUserResponse(*user))
	}
}

// NewUpdateUserHandler returns an HTTP handler partially updating a user.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body models.User true "Fields to update"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse "Invalid id, request body or schema violation"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 409 {object} models.ErrorResponse "Username already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/users/{id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !models.IsValidID(id) {
			writeError(w, http.StatusBadRequest, msgInvalidID)
			return
		}

		var patch models.User
		if !decodeBody(w, r, &patch) {
			return
		}

		user, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, r, userResource, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewUserResponse(*user))
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete a user
// @Tags users
// @Param id path string true "User ID"
// @Success 204 "Deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /api/users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, r, userResource, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
