package models

import "time"

// Perfil público del profesional. Se crea en la misma transacción
// que la cuenta; el slug es inmutable una vez asignado.
type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AccountID uint    `gorm:"uniqueIndex" json:"account_id"`
	Account   Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	DisplayName string `gorm:"size:100;not null" json:"display_name"`
	Bio         string `gorm:"size:500" json:"bio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
