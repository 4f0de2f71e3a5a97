package booking

import (
	"context"
	"time"

	"github.com/nexthora/booking-api/internal/models"
)

type Repository interface {
	// -------- Professional --------
	GetProfessionalByID(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	GetProfessionalBySlug(
		ctx context.Context,
		slug string,
	) (*models.Professional, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		professionalID uint,
		serviceID uint,
	) (*models.Service, error)

	CountServices(
		ctx context.Context,
		professionalID uint,
	) (int64, error)

	// -------- Schedule / blackout --------
	GetBusinessHours(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (*models.BusinessHours, error)

	HasTimeOff(
		ctx context.Context,
		professionalID uint,
		date time.Time,
	) (bool, error)

	// -------- Appointment (availability reads) --------
	ListAppointmentsForDay(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (commit) --------
	// CreateAppointment corre en una transacción que bloquea la fila del
	// profesional y reafirma la ausencia de conflicto antes de insertar.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForProfessional(
		ctx context.Context,
		appointmentID uint,
		professionalID uint,
	) (*models.Appointment, error)

	GetAppointmentByCode(
		ctx context.Context,
		professionalID uint,
		code string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
