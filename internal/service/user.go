// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, enforces rules, orchestrates
//	Repository (Data layer)  → reads/writes to the database
//
// Services take repository INTERFACES, not concrete types — so tests inject
// in-memory mocks, and the HTTP layer is never needed to exercise a rule.
// Services return domain errors (apperror), never HTTP status codes; the
// handler does that translation.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/octofit-tracker/internal/apperror"
	"github.com/sakif/octofit-tracker/internal/model"
	"github.com/sakif/octofit-tracker/internal/repository"
)

// UserService handles business logic for user accounts.
type UserService struct {
	repo   repository.UserRepository
	logger *slog.Logger
}

func NewUserService(repo repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and stores a new user.
//
// EMAIL UNIQUENESS: we pre-check with GetUserByEmail for a clean error
// message, and the repository's UNIQUE constraint catches the race where two
// concurrent creates pass the pre-check — either way the caller sees a
// field-level validation error and the store is unchanged.
func (s *UserService) Create(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, apperror.ValidationFailed("username", "username is required")
	}
	if email == "" {
		return nil, apperror.ValidationFailed("email", "email is required")
	}
	if password == "" {
		return nil, apperror.ValidationFailed("password", "password is required")
	}

	if err := s.checkEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: password,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrValidation) {
			return nil, err
		}
		s.logger.Error("failed to create user",
			slog.String("email", email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user created",
		slog.String("id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// GetByID retrieves a user.
// Returns apperror.ErrNotFound if the user doesn't exist.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "user ID is required")
	}
	return s.repo.GetUserByID(ctx, id)
}

// List returns all users, optionally narrowed by the admin filter.
func (s *UserService) List(ctx context.Context, filter repository.UserFilter) ([]model.User, error) {
	users, err := s.repo.ListUsers(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// Update applies a full or partial field set to an existing user.
// nil means "leave unchanged"; every provided field gets the same validation
// as Create.
func (s *UserService) Update(ctx context.Context, id string, username, email, password *string) (*model.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.ValidationFailed("id", "user ID is required")
	}

	// Fetch existing — returns NotFound if it doesn't exist.
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if username != nil {
		v := strings.TrimSpace(*username)
		if v == "" {
			return nil, apperror.ValidationFailed("username", "username cannot be empty")
		}
		user.Username = v
	}
	if email != nil {
		v := strings.TrimSpace(*email)
		if v == "" {
			return nil, apperror.ValidationFailed("email", "email cannot be empty")
		}
		if v != user.Email {
			if err := s.checkEmailFree(ctx, v, user.ID); err != nil {
				return nil, err
			}
		}
		user.Email = v
	}
	if password != nil {
		if *password == "" {
			return nil, apperror.ValidationFailed("password", "password cannot be empty")
		}
		user.Password = *password
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrValidation) || errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update user",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating user: %w", err)
	}

	s.logger.Info("user updated", slog.String("id", user.ID))
	return user, nil
}

// Delete removes a user together with their activities and team memberships.
// The repository performs the cascade atomically.
func (s *UserService) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperror.ValidationFailed("id", "user ID is required")
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deleted", slog.String("id", id))
	return nil
}

// checkEmailFree returns a validation error when email already belongs to a
// different user than selfID (empty selfID = any match is a collision).
func (s *UserService) checkEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil // email is free
		}
		return fmt.Errorf("checking email uniqueness: %w", err)
	}
	if existing.ID == selfID {
		return nil
	}
	return apperror.ValidationFailed("email", fmt.Sprintf("email %s is already in use", email))
}
