package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"oficinas/internal/cache"
	apperrors "oficinas/internal/errors"
	"oficinas/internal/model"
	"oficinas/internal/repository"
)

const (
	workshopListCacheKey = "workshops:all"
	workshopListCacheTTL = 5 * time.Minute
)

// WorkshopService exposes workshop CRUD operations.
type WorkshopService interface {
	List(ctx context.Context) ([]model.Workshop, error)
	Get(ctx context.Context, id uint) (*model.Workshop, error)
	Create(ctx context.Context, workshop *model.Workshop) (*model.Workshop, error)
	Update(ctx context.Context, workshop *model.Workshop) error
	Delete(ctx context.Context, id uint) error
}

type workshopService struct {
	repo  repository.WorkshopRepository
	cache *cache.Client
}

// NewWorkshopService builds a WorkshopService with repository and cache.
func NewWorkshopService(repo repository.WorkshopRepository, cache *cache.Client) WorkshopService {
	return &workshopService{repo: repo, cache: cache}
}

// List returns all workshops, upcoming first. The Redis entry is a read
// accelerator only; every mutation drops it.
func (s *workshopService) List(ctx context.Context) ([]model.Workshop, error) {
	if data, _ := s.cache.Get(ctx, workshopListCacheKey); data != nil {
		var cached []model.Workshop
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	workshops, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workshops: %w", err)
	}

	if payload, err := json.Marshal(workshops); err == nil {
		_ = s.cache.Set(ctx, workshopListCacheKey, payload, workshopListCacheTTL)
	}
	return workshops, nil
}

func (s *workshopService) Get(ctx context.Context, id uint) (*model.Workshop, error) {
	workshop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("find workshop: %w", err)
	}
	return workshop, nil
}

func (s *workshopService) Create(ctx context.Context, workshop *model.Workshop) (*model.Workshop, error) {
	if workshop.Capacity <= 0 {
		workshop.Capacity = model.DefaultWorkshopCapacity
	}
	if err := s.repo.Create(ctx, workshop); err != nil {
		return nil, fmt.Errorf("create workshop: %w", err)
	}
	_ = s.cache.Delete(ctx, workshopListCacheKey)
	return workshop, nil
}

func (s *workshopService) Update(ctx context.Context, workshop *model.Workshop) error {
	existing, err := s.repo.FindByID(ctx, workshop.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkshopNotFound
		}
		return fmt.Errorf("find workshop: %w", err)
	}

	workshop.CreatedAt = existing.CreatedAt
	if err := s.repo.Update(ctx, workshop); err != nil {
		return fmt.Errorf("update workshop: %w", err)
	}
	_ = s.cache.Delete(ctx, workshopListCacheKey)
	return nil
}

func (s *workshopService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkshopNotFound
		}
		return fmt.Errorf("delete workshop: %w", err)
	}
	_ = s.cache.Delete(ctx, workshopListCacheKey)
	return nil
}
