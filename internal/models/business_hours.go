package models

import "time"

// Bloque de horario semanal recurrente. A lo más un bloque por
// (profesional, día); el endpoint de horario reemplaza la semana completa.
type BusinessHours struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index:idx_hours_pro_weekday,unique" json:"professional_id"`

	Weekday   int    `gorm:"index:idx_hours_pro_weekday,unique" json:"weekday"` // 0 = domingo ... 6 = sábado
	StartTime string `gorm:"size:5;not null" json:"start_time"`                 // "15:04"
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
