package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Código público para la página de confirmación del cliente.
	Code string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	// Referencias anulables: las citas históricas sobreviven al borrado
	// del profesional o del servicio.
	ProfessionalID *uint        `gorm:"index:idx_appt_pro_start" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID *uint   `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ClientName  string `gorm:"size:200;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`

	// EndTime se calcula una sola vez al crear, con la duración vigente
	// del servicio; nunca se recalcula en guardados posteriores.
	StartTime time.Time `gorm:"index:idx_appt_pro_start" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'CONFIRMED'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.Code == "" {
		a.Code = uuid.NewString()
	}
	return nil
}
