package services

import (
	"context"

	"github.com/sbilibin2017/job-listings/internal/logger"
	"github.com/sbilibin2017/job-listings/internal/models"
	"github.com/sbilibin2017/job-listings/internal/validation"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

const userResource = "user"

// UserRepository defines storage operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]models.UserRecord, error)
	GetByID(ctx context.Context, id string) (*models.UserRecord, error)
	GetForUpdate(ctx context.Context, id string) (*models.UserRecord, error)
	Create(ctx context.Context, user models.User) (*models.UserRecord, error)
	Replace(ctx context.Context, id string, user models.User) (*models.UserRecord, error)
	Delete(ctx context.Context, id string) error
}

// UserService implements the user operations behind the HTTP handlers.
// Passwords are stored as supplied.
type UserService struct {
	repo   UserRepository
	events eventPublisher
}

// NewUserService creates a UserService. kafkaWriter may be nil.
func NewUserService(repo UserRepository, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		repo:   repo,
		events: eventPublisher{writer: kafkaWriter},
	}
}

func (s *UserService) List(ctx context.Context) ([]models.UserRecord, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.UserRecord, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates user and stores it. A taken username yields
// models.ErrUsernameTaken.
func (s *UserService) Create(ctx context.Context, user models.User) (*models.UserRecord, error) {
	if err := validation.Check(user); err != nil {
		logger.Log.Warnw("user rejected", "username", user.Username, "error", err)
		return nil, err
	}

	rec, err := s.repo.Create(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to create user", "username", user.Username, "error", err)
		return nil, err
	}

	s.events.publish(ctx, userResource, EventCreated, rec.ID)
	return rec, nil
}

// Update merges the non-empty fields of patch onto the stored user,
// validates the result and stores it.
func (s *UserService) Update(ctx context.Context, id string, patch models.User) (*models.UserRecord, error) {
	current, err := s.repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := current.User
	if err := mergePatch(&merged, patch); err != nil {
		logger.Log.Errorw("failed to merge user patch", "id", id, "error", err)
		return nil, err
	}
	if err := validation.Check(merged); err != nil {
		logger.Log.Warnw("user update rejected", "id", id, "error", err)
		return nil, err
	}

	rec, err := s.repo.Replace(ctx, current.ID, merged)
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "error", err)
		return nil, err
	}

	s.events.publish(ctx, userResource, EventUpdated, rec.ID)
	return rec, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.publish(ctx, userResource, EventDeleted, id)
	return nil
}
