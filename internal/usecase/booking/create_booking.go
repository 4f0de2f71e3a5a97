package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/nexthora/booking-api/internal/audit"
	domain "github.com/nexthora/booking-api/internal/domain/booking"
	"github.com/nexthora/booking-api/internal/httperr"
	"github.com/nexthora/booking-api/internal/models"
	"github.com/nexthora/booking-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ProfessionalID uint
	ServiceID      uint

	ClientName  string
	ClientEmail string
	ClientPhone string

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo         domain.Repository
	availability *GetAvailability
	audit        *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:         repo,
		availability: NewGetAvailability(repo),
		audit:        audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute revalida el horario pedido contra la disponibilidad vigente al
// momento del commit en vez de confiar en la lista mostrada antes: entre
// mostrar y enviar el formulario puede pasar cualquier cantidad de tiempo.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	service, err := uc.repo.GetService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	if !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// El horario pedido debe seguir siendo miembro de la disponibilidad
	// recalculada ahora: cubre horarios tomados, bloqueos nuevos y fechas
	// que ya pasaron.
	slots, err := uc.availability.Execute(ctx, domain.AvailabilityInput{
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
		Date:           start,
	})
	if err != nil {
		return nil, err
	}

	requested := start.Format("15:04")
	member := false
	for _, s := range slots {
		if s.Start == requested {
			member = true
			break
		}
	}
	if !member {
		return nil, httperr.ErrBusiness("slot_no_longer_available")
	}

	// La hora de término se fija aquí, con la duración vigente del
	// servicio; cambios posteriores del servicio no alteran citas pasadas.
	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	proID := in.ProfessionalID
	svcID := service.ID

	ap := &models.Appointment{
		ProfessionalID: &proID,
		ServiceID:      &svcID,
		ClientName:     in.ClientName,
		ClientEmail:    in.ClientEmail,
		ClientPhone:    in.ClientPhone,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
	}

	// Última línea de defensa contra el doble agendado: el repositorio
	// inserta bajo bloqueo por profesional y reafirma el no-traslape.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: in.ProfessionalID,
		Action:         "booking_created",
		Entity:         "appointment",
		EntityID:       &ap.ID,
	})

	return ap, nil
}
