package repository

import (
	"context"

	"gorm.io/gorm"

	"oficinas/internal/model"
)

// EnrollmentRepository defines enrollment persistence operations.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	Delete(ctx context.Context, id uint) error
	ExistsForUserAndWorkshop(ctx context.Context, userID, workshopID uint) (bool, error)
	ListAll(ctx context.Context) ([]model.EnrollmentListItem, error)
	ListForUser(ctx context.Context, userID uint) ([]model.UserEnrollment, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository builds a GORM-backed repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Enrollment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *enrollmentRepository) ExistsForUserAndWorkshop(ctx context.Context, userID, workshopID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("usuario_id = ? AND oficina_id = ?", userID, workshopID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListAll returns every enrollment joined with user and workshop display
// fields, newest first.
func (r *enrollmentRepository) ListAll(ctx context.Context) ([]model.EnrollmentListItem, error) {
	var rows []model.EnrollmentListItem
	err := r.db.WithContext(ctx).
		Table("inscricoes i").
		Select(`i.id,
			i.usuario_id AS user_id,
			i.oficina_id AS workshop_id,
			i.data_inscricao AS enrolled_at,
			u.nome AS user_name,
			u.email AS user_email,
			o.titulo AS workshop_title`).
		Joins("JOIN usuarios u ON i.usuario_id = u.id").
		Joins("JOIN oficinas o ON i.oficina_id = o.id").
		Order("i.data_inscricao DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListForUser returns one user's enrollments joined with workshop detail
// fields, newest first.
func (r *enrollmentRepository) ListForUser(ctx context.Context, userID uint) ([]model.UserEnrollment, error) {
	var rows []model.UserEnrollment
	err := r.db.WithContext(ctx).
		Table("inscricoes i").
		Select(`i.id,
			i.usuario_id AS user_id,
			i.oficina_id AS workshop_id,
			i.data_inscricao AS enrolled_at,
			o.titulo AS title,
			o.descricao AS description,
			o.instrutor AS instructor,
			o.data_inicio AS starts_at,
			o.data_fim AS ends_at`).
		Joins("JOIN oficinas o ON i.oficina_id = o.id").
		Where("i.usuario_id = ?", userID).
		Order("i.data_inscricao DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
