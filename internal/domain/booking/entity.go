package booking

import (
	"time"

	"github.com/nexthora/booking-api/internal/httperr"
	"github.com/nexthora/booking-api/internal/models"
)

type AvailabilityInput struct {
	ProfessionalID uint
	ServiceID      uint
	Date           time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, by Status, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	if by != StatusCancelledByClient && by != StatusCancelledByPro {
		return httperr.ErrBusiness("invalid_cancel_status")
	}

	ap.Status = string(by)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
