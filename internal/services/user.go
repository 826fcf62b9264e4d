package services

import (
	"context"
	"errors"

	"github.com/GregMSThompson/userdata-api/internal/dto"
	"github.com/GregMSThompson/userdata-api/internal/errs"
	"github.com/GregMSThompson/userdata-api/internal/models"
	"github.com/GregMSThompson/userdata-api/pkg/logger"
)

type userUSStore interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, id string, changes map[string]string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

// userService applies the read/write error policy on top of a user store.
// Create and update always return their failures; list, get and delete follow
// ReadFailure.
type userService struct {
	Store       userUSStore
	ReadFailure dto.ReadFailurePolicy
}

func NewUserService(store userUSStore, policy dto.ReadFailurePolicy) *userService {
	if policy == "" {
		policy = dto.ReadFailureSwallow
	}
	return &userService{
		Store:       store,
		ReadFailure: policy,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.Store.ListUsers(ctx)
	if err != nil {
		if s.swallow(ctx, "failed to list users", err) {
			return []*models.User{}, nil
		}
		return nil, err
	}
	return users, nil
}

// GetUser returns nil, nil when no user has the id.
func (s *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.Store.GetUser(ctx, id)
	if err != nil {
		var nf *errs.NotFoundError
		if errors.As(err, &nf) {
			return nil, nil
		}
		if s.swallow(ctx, "failed to get user", err, "user_id", id) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	log := logger.FromContext(ctx)

	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return nil, errs.NewValidationError("firstName, lastName and email are required")
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if err := s.Store.CreateUser(ctx, user); err != nil {
		log.Error("failed to create user in store", "error", err)
		var connErr *errs.ConnectionError
		if errors.As(err, &connErr) {
			return nil, err
		}
		return nil, errs.NewInsertError(err)
	}

	log.Info("user created", "user_id", user.ID)
	log.Debug("user created with full details", "user", user)
	return user, nil
}

// UpdateUser applies the present, non-empty fields of req and returns the
// user as stored afterwards.
func (s *userService) UpdateUser(ctx context.Context, req dto.UpdateUserRequest) (*models.User, error) {
	log := logger.FromContext(ctx).With("user_id", req.ID)

	changes := req.Changes()
	user, err := s.Store.UpdateUser(ctx, req.ID, changes)
	if err != nil {
		var nf *errs.NotFoundError
		var connErr *errs.ConnectionError
		switch {
		case errors.As(err, &nf):
			log.Warn("update target not found")
			return nil, err
		case errors.As(err, &connErr):
			log.Error("failed to update user in store", "error", err)
			return nil, err
		}
		log.Error("failed to update user in store", "error", err)
		return nil, errs.NewUpdateError(err)
	}

	log.Info("user updated", "fields", len(changes))
	return user, nil
}

// DeleteUser is true only when exactly one user was removed. A malformed id
// is reported as false under either policy.
func (s *userService) DeleteUser(ctx context.Context, id string) (bool, error) {
	deleted, err := s.Store.DeleteUser(ctx, id)
	if err != nil {
		var ve *errs.ValidationError
		if errors.As(err, &ve) {
			logger.FromContext(ctx).Warn("delete with invalid id", "user_id", id)
			return false, nil
		}
		if s.swallow(ctx, "failed to delete user", err, "user_id", id) {
			return false, nil
		}
		return false, err
	}
	if deleted {
		logger.FromContext(ctx).Info("user deleted", "user_id", id)
	}
	return deleted, nil
}

// swallow logs a read-path failure and reports whether the caller should
// return the empty result instead of err.
func (s *userService) swallow(ctx context.Context, msg string, err error, args ...any) bool {
	log := logger.FromContext(ctx).With(args...)
	log.Error(msg, "error", err, "read_failure_policy", string(s.ReadFailure))
	return s.ReadFailure != dto.ReadFailurePropagate
}
