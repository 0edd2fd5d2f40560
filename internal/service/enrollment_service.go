package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "oficinas/internal/errors"
	"oficinas/internal/model"
	"oficinas/internal/repository"
)

// EnrollmentService enforces at most one enrollment per (user, workshop) pair.
type EnrollmentService interface {
	ListAll(ctx context.Context) ([]model.EnrollmentListItem, error)
	ListForUser(ctx context.Context, userID uint) ([]model.UserEnrollment, error)
	Create(ctx context.Context, userID, workshopID uint) (*model.Enrollment, error)
	Cancel(ctx context.Context, id uint) error
}

type enrollmentService struct {
	repo repository.EnrollmentRepository
}

// NewEnrollmentService builds an EnrollmentService.
func NewEnrollmentService(repo repository.EnrollmentRepository) EnrollmentService {
	return &enrollmentService{repo: repo}
}

func (s *enrollmentService) ListAll(ctx context.Context) ([]model.EnrollmentListItem, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return rows, nil
}

func (s *enrollmentService) ListForUser(ctx context.Context, userID uint) ([]model.UserEnrollment, error) {
	rows, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user enrollments: %w", err)
	}
	return rows, nil
}

// Create enrolls a user in a workshop. The existence check gives a friendly
// answer on the common path; the composite unique index closes the race two
// concurrent requests would otherwise win together.
func (s *enrollmentService) Create(ctx context.Context, userID, workshopID uint) (*model.Enrollment, error) {
	exists, err := s.repo.ExistsForUserAndWorkshop(ctx, userID, workshopID)
	if err != nil {
		return nil, fmt.Errorf("check enrollment existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateEnrollment
	}

	enrollment := &model.Enrollment{
		UserID:     userID,
		WorkshopID: workshopID,
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateEnrollment
		}
		return nil, fmt.Errorf("create enrollment: %w", err)
	}
	return enrollment, nil
}

// Cancel deletes exactly the given enrollment. No cascading effects.
func (s *enrollmentService) Cancel(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEnrollmentNotFound
		}
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}
