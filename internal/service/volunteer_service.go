package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	apperrors "oficinas/internal/errors"
	"oficinas/internal/model"
	"oficinas/internal/repository"
)

// VolunteerService manages volunteer records and keeps the referenced
// user's role in sync: aluno ⇄ instrutor, with admin never reassigned.
type VolunteerService interface {
	ListAll(ctx context.Context) ([]model.VolunteerListItem, error)
	Create(ctx context.Context, userID uint, department, specialization string) (*model.Volunteer, error)
	Remove(ctx context.Context, id uint) error
}

type volunteerService struct {
	repo     repository.VolunteerRepository
	userRepo repository.UserRepository
}

// NewVolunteerService builds a VolunteerService.
func NewVolunteerService(repo repository.VolunteerRepository, userRepo repository.UserRepository) VolunteerService {
	return &volunteerService{repo: repo, userRepo: userRepo}
}

func (s *volunteerService) ListAll(ctx context.Context) ([]model.VolunteerListItem, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list volunteers: %w", err)
	}
	return rows, nil
}

// Create registers a volunteer and then promotes the user to instrutor.
// The promotion is best-effort: a failure is logged, never surfaced, and
// does not undo the volunteer record.
func (s *volunteerService) Create(ctx context.Context, userID uint, department, specialization string) (*model.Volunteer, error) {
	exists, err := s.repo.ExistsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check volunteer existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateVolunteer
	}

	if department == "" {
		department = model.VolunteerFieldFallback
	}
	if specialization == "" {
		specialization = model.VolunteerFieldFallback
	}

	volunteer := &model.Volunteer{
		UserID:         userID,
		Department:     department,
		Specialization: specialization,
	}
	if err := s.repo.Create(ctx, volunteer); err != nil {
		// Unique index on usuario_id is the authoritative duplicate guard.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateVolunteer
		}
		return nil, fmt.Errorf("create volunteer: %w", err)
	}

	if err := s.userRepo.UpdateRoleUnlessAdmin(ctx, userID, model.RoleInstructor); err != nil {
		log.Printf("warning: failed to promote user %d to instrutor: %v", userID, err)
	}

	return volunteer, nil
}

// Remove deletes a volunteer record and then reverts the user's role to
// aluno unless the user is an admin. The revert is best-effort.
func (s *volunteerService) Remove(ctx context.Context, id uint) error {
	volunteer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVolunteerNotFound
		}
		return fmt.Errorf("find volunteer: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVolunteerNotFound
		}
		return fmt.Errorf("delete volunteer: %w", err)
	}

	if err := s.userRepo.UpdateRoleUnlessAdmin(ctx, volunteer.UserID, model.RoleStudent); err != nil {
		log.Printf("warning: failed to revert user %d to aluno: %v", volunteer.UserID, err)
	}

	return nil
}
