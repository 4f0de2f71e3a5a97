package booking

import (
	"testing"
	"time"

	"github.com/nexthora/booking-api/internal/httperr"
	"github.com/nexthora/booking-api/internal/models"
)

func TestCancel_TransitionsFromConfirmedOnly(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	if err := Cancel(ap, StatusCancelledByClient, now); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if ap.Status != string(StatusCancelledByClient) {
		t.Errorf("status = %s", ap.Status)
	}
	if ap.CancelledAt == nil || !ap.CancelledAt.Equal(now) {
		t.Errorf("CancelledAt not set")
	}

	// una cita ya cancelada no se cancela de nuevo
	if err := Cancel(ap, StatusCancelledByPro, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Errorf("expected invalid_state, got %v", err)
	}
}

func TestCancel_RejectsNonCancelStatus(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}

	err := Cancel(ap, StatusCompleted, time.Now())
	if !httperr.IsBusiness(err, "invalid_cancel_status") {
		t.Errorf("expected invalid_cancel_status, got %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Errorf("status mutated on rejected transition")
	}
}

func TestComplete_TransitionsFromConfirmedOnly(t *testing.T) {
	now := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	if err := Complete(ap, now); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Errorf("status = %s", ap.Status)
	}

	for _, st := range []Status{StatusCompleted, StatusCancelledByClient, StatusCancelledByPro} {
		ap := &models.Appointment{Status: string(st)}
		if err := Complete(ap, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("Complete from %s: expected invalid_state, got %v", st, err)
		}
	}
}
