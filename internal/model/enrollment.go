package model

import "time"

// Enrollment links a user to a workshop they signed up for.
// The composite unique index is the authoritative guard against a user
// enrolling twice in the same workshop.
type Enrollment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"usuario_id" gorm:"column:usuario_id;not null;uniqueIndex:idx_inscricao_usuario_oficina"`
	WorkshopID uint      `json:"oficina_id" gorm:"column:oficina_id;not null;uniqueIndex:idx_inscricao_usuario_oficina"`
	CreatedAt  time.Time `json:"data_inscricao" gorm:"column:data_inscricao"`

	// Relations
	User     User     `json:"-" gorm:"foreignKey:UserID"`
	Workshop Workshop `json:"-" gorm:"foreignKey:WorkshopID"`
}

// TableName maps Enrollment onto the legacy inscricoes table.
func (Enrollment) TableName() string { return "inscricoes" }

// EnrollmentListItem is an admin listing row joined with user and workshop
// display fields.
type EnrollmentListItem struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"usuario_id"`
	WorkshopID    uint      `json:"oficina_id"`
	EnrolledAt    time.Time `json:"data_inscricao"`
	UserName      string    `json:"usuario_nome"`
	UserEmail     string    `json:"usuario_email"`
	WorkshopTitle string    `json:"oficina_titulo"`
}

// UserEnrollment is one user's enrollment joined with workshop detail fields.
type UserEnrollment struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"usuario_id"`
	WorkshopID  uint       `json:"oficina_id"`
	EnrolledAt  time.Time  `json:"data_inscricao"`
	Title       string     `json:"titulo"`
	Description string     `json:"descricao"`
	Instructor  string     `json:"instrutor"`
	StartsAt    time.Time  `json:"data_inicio"`
	EndsAt      *time.Time `json:"data_fim"`
}
