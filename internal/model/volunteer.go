package model

import "time"

// VolunteerFieldFallback fills departamento/especializacao when omitted.
const VolunteerFieldFallback = "Não especificado"

// Volunteer grants a user the instructor role plus volunteer metadata.
// The unique index on usuario_id enforces at most one volunteer record
// per user.
type Volunteer struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"userId" gorm:"column:usuario_id;not null;uniqueIndex"`
	Department     string    `json:"department" gorm:"column:departamento;size:255;not null"`
	Specialization string    `json:"specialization" gorm:"column:especializacao;size:255;not null"`
	CreatedAt      time.Time `json:"joinDate" gorm:"column:data_adesao"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName maps Volunteer onto the legacy voluntarios table.
func (Volunteer) TableName() string { return "voluntarios" }

// VolunteerListItem is a volunteer row joined with user display fields,
// in the shape the admin frontend consumes.
type VolunteerListItem struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"userId"`
	UserName       string    `json:"userName"`
	UserEmail      string    `json:"userEmail"`
	Department     string    `json:"department"`
	Specialization string    `json:"specialization"`
	JoinDate       time.Time `json:"joinDate"`
	CreatedAt      time.Time `json:"createdAt"`
}
