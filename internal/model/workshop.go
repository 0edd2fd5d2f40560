package model

import "time"

// DefaultWorkshopCapacity is used when a workshop is created without vagas.
const DefaultWorkshopCapacity = 20

// Workshop represents a scheduled class (oficina).
type Workshop struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"titulo" gorm:"column:titulo;size:255;not null"`
	Description string     `json:"descricao" gorm:"column:descricao;type:text;not null"`
	Instructor  string     `json:"instrutor" gorm:"column:instrutor;size:255;not null"`
	Category    string     `json:"categoria" gorm:"column:categoria;size:100;index"`
	Capacity    int        `json:"vagas" gorm:"column:vagas;not null;default:20"`
	StartsAt    time.Time  `json:"data_inicio" gorm:"column:data_inicio;not null;index"`
	EndsAt      *time.Time `json:"data_fim" gorm:"column:data_fim"`
	CreatedAt   time.Time  `json:"data_criacao" gorm:"column:data_criacao"`
}

// TableName maps Workshop onto the legacy oficinas table.
func (Workshop) TableName() string { return "oficinas" }
