package model

import "time"

// Role values stored in usuarios.tipo.
const (
	RoleStudent    = "aluno"
	RoleInstructor = "instrutor"
	RoleAdmin      = "admin"
)

// User represents a registered platform user.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"nome" gorm:"column:nome;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"column:senha;size:255;not null"` // Never expose in JSON
	Role         string    `json:"tipo" gorm:"column:tipo;size:20;not null;default:'aluno';index"`
	CreatedAt    time.Time `json:"data_criacao" gorm:"column:data_criacao"`
}

// TableName maps User onto the legacy usuarios table.
func (User) TableName() string { return "usuarios" }
