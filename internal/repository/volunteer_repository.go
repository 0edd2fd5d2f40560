package repository

import (
	"context"

	"gorm.io/gorm"

	"oficinas/internal/model"
)

// VolunteerRepository defines volunteer persistence operations.
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *model.Volunteer) error
	FindByID(ctx context.Context, id uint) (*model.Volunteer, error)
	Delete(ctx context.Context, id uint) error
	ExistsForUser(ctx context.Context, userID uint) (bool, error)
	ListAll(ctx context.Context) ([]model.VolunteerListItem, error)
}

type volunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository builds a GORM-backed repository.
func NewVolunteerRepository(db *gorm.DB) VolunteerRepository {
	return &volunteerRepository{db: db}
}

func (r *volunteerRepository) Create(ctx context.Context, volunteer *model.Volunteer) error {
	return r.db.WithContext(ctx).Create(volunteer).Error
}

func (r *volunteerRepository) FindByID(ctx context.Context, id uint) (*model.Volunteer, error) {
	var volunteer model.Volunteer
	if err := r.db.WithContext(ctx).First(&volunteer, id).Error; err != nil {
		return nil, err
	}
	return &volunteer, nil
}

func (r *volunteerRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Volunteer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *volunteerRepository) ExistsForUser(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Volunteer{}).
		Where("usuario_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListAll returns every volunteer joined with user display fields, newest
// first. The join date doubles as createdAt in the response shape.
func (r *volunteerRepository) ListAll(ctx context.Context) ([]model.VolunteerListItem, error) {
	var rows []model.VolunteerListItem
	err := r.db.WithContext(ctx).
		Table("voluntarios v").
		Select(`v.id,
			v.usuario_id AS user_id,
			u.nome AS user_name,
			u.email AS user_email,
			v.departamento AS department,
			v.especializacao AS specialization,
			v.data_adesao AS join_date,
			v.data_adesao AS created_at`).
		Joins("JOIN usuarios u ON v.usuario_id = u.id").
		Order("v.data_adesao DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
