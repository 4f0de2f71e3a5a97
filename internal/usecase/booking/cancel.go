package booking

import (
	"context"

	"github.com/nexthora/booking-api/internal/audit"
	domain "github.com/nexthora/booking-api/internal/domain/booking"
	"github.com/nexthora/booking-api/internal/httperr"
	"github.com/nexthora/booking-api/internal/models"
	"github.com/nexthora/booking-api/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancela una cita confirmada. El profesional decide si registra
// la cancelación como propia o pedida por el cliente.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	professionalID uint,
	appointmentID uint,
	by domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForProfessional(ctx, appointmentID, professionalID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.Now()
	if err := domain.Cancel(ap, by, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: professionalID,
		Action:         "booking_cancelled",
		Entity:         "appointment",
		EntityID:       &ap.ID,
		Metadata:       map[string]string{"by": string(by)},
	})

	return ap, nil
}
