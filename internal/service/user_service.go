package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "oficinas/internal/errors"
	"oficinas/internal/model"
	"oficinas/internal/repository"
)

// UserService exposes profile operations.
type UserService interface {
	GetProfile(ctx context.Context, id uint) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, name, email, password string) error
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// GetProfile returns the user without the password hash.
func (s *userService) GetProfile(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile updates name and email, re-hashing the password only when a
// new one is provided.
func (s *userService) UpdateProfile(ctx context.Context, id uint, name, email, password string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	user.Name = name
	user.Email = email
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a user. Administrative side endpoint, not part of the
// volunteer/enrollment lifecycle.
func (s *userService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
