package models

import "time"

// Rango de fechas bloqueado (inclusive en ambos extremos). Anula el
// horario recurrente del profesional durante días completos.
type TimeOff struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index" json:"professional_id"`

	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null" json:"end_date"`
	Description string    `gorm:"size:100" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
