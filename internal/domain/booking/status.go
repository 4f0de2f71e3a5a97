package booking

import "github.com/nexthora/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed         Status = "CONFIRMED"
	StatusCancelledByClient Status = "CANCELLED_BY_CLIENT"
	StatusCancelledByPro    Status = "CANCELLED_BY_PRO"
	StatusCompleted         Status = "COMPLETED"
)

// ===============================
// Validations
// ===============================

// Solo una cita confirmada puede cancelarse
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// Solo una cita confirmada puede completarse
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
