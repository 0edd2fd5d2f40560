package repository

import (
	"context"

	"gorm.io/gorm"

	"oficinas/internal/model"
)

// WorkshopRepository defines workshop persistence operations.
type WorkshopRepository interface {
	Create(ctx context.Context, workshop *model.Workshop) error
	Update(ctx context.Context, workshop *model.Workshop) error
	FindByID(ctx context.Context, id uint) (*model.Workshop, error)
	List(ctx context.Context) ([]model.Workshop, error)
	Delete(ctx context.Context, id uint) error
}

type workshopRepository struct {
	db *gorm.DB
}

// NewWorkshopRepository builds a GORM-backed repository.
func NewWorkshopRepository(db *gorm.DB) WorkshopRepository {
	return &workshopRepository{db: db}
}

func (r *workshopRepository) Create(ctx context.Context, workshop *model.Workshop) error {
	return r.db.WithContext(ctx).Create(workshop).Error
}

func (r *workshopRepository) Update(ctx context.Context, workshop *model.Workshop) error {
	return r.db.WithContext(ctx).Save(workshop).Error
}

func (r *workshopRepository) FindByID(ctx context.Context, id uint) (*model.Workshop, error) {
	var workshop model.Workshop
	if err := r.db.WithContext(ctx).First(&workshop, id).Error; err != nil {
		return nil, err
	}
	return &workshop, nil
}

// List returns all workshops, upcoming first.
func (r *workshopRepository) List(ctx context.Context) ([]model.Workshop, error) {
	var workshops []model.Workshop
	if err := r.db.WithContext(ctx).Order("data_inicio DESC").Find(&workshops).Error; err != nil {
		return nil, err
	}
	return workshops, nil
}

func (r *workshopRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Workshop{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
