package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nexthora/booking-api/internal/audit"
	domain "github.com/nexthora/booking-api/internal/domain/booking"
	"github.com/nexthora/booking-api/internal/httperr"
	"github.com/nexthora/booking-api/internal/timezone"
)

// próximo lunes con al menos una semana de holgura, para que el filtro
// de horarios pasados nunca intervenga
func futureMonday(t *testing.T) string {
	t.Helper()
	d := timezone.Now().AddDate(0, 0, 7)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func newCreateBooking(repo *fakeRepo) *CreateBooking {
	dispatcher := audit.NewDispatcher(audit.New(nil))
	return NewCreateBooking(repo, dispatcher)
}

func TestCreateBooking_PersistsConfirmedAppointment(t *testing.T) {
	repo := mondayRepo()
	uc := newCreateBooking(repo)
	date := futureMonday(t)

	ap, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: proID,
		ServiceID:      svcID,
		ClientName:     "Carla Soto",
		ClientEmail:    "carla@example.com",
		ClientPhone:    "+56911111111",
		Date:           date,
		Time:           "10:00",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if ap.Status != string(domain.StatusConfirmed) {
		t.Errorf("status = %s, want CONFIRMED", ap.Status)
	}
	if got := ap.EndTime.Sub(ap.StartTime); got != 60*time.Minute {
		t.Errorf("appointment length = %v, want 60m", got)
	}
	if len(repo.appointments) != 1 {
		t.Fatalf("appointments stored = %d, want 1", len(repo.appointments))
	}
}

func TestCreateBooking_EndFixedAtBookingTime(t *testing.T) {
	repo := mondayRepo()
	uc := newCreateBooking(repo)

	ap, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: proID,
		ServiceID:      svcID,
		ClientName:     "Carla Soto",
		ClientEmail:    "carla@example.com",
		Date:           futureMonday(t),
		Time:           "09:00",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// cambiar la duración del servicio después no toca la cita existente
	repo.services[0].DurationMin = 30

	stored := repo.appointments[0]
	if got := stored.EndTime.Sub(stored.StartTime); got != 60*time.Minute {
		t.Errorf("stored length = %v, want 60m", got)
	}
	if !stored.EndTime.Equal(ap.EndTime) {
		t.Errorf("stored end changed after service edit")
	}
}

func TestCreateBooking_RejectsTakenSlot(t *testing.T) {
	repo := mondayRepo()
	uc := newCreateBooking(repo)
	date := futureMonday(t)

	in := CreateBookingInput{
		ProfessionalID: proID,
		ServiceID:      svcID,
		ClientName:     "Carla Soto",
		ClientEmail:    "carla@example.com",
		Date:           date,
		Time:           "10:00",
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first commit failed: %v", err)
	}

	// segundo commit por el mismo horario: pierde
	in.ClientName = "Pedro Rojas"
	in.ClientEmail = "pedro@example.com"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_no_longer_available") {
		t.Fatalf("expected slot_no_longer_available, got %v", err)
	}

	if len(repo.appointments) != 1 {
		t.Fatalf("appointments stored = %d, want exactly 1", len(repo.appointments))
	}
}

func TestCreateBooking_ConcurrentCommitOneWinner(t *testing.T) {
	repo := mondayRepo()
	date := futureMonday(t)

	// dos clientes envían el mismo horario a la vez: exactamente uno
	// gana, el otro recibe el conflicto y no queda nada duplicado
	in := func(name, email string) CreateBookingInput {
		return CreateBookingInput{
			ProfessionalID: proID,
			ServiceID:      svcID,
			ClientName:     name,
			ClientEmail:    email,
			Date:           date,
			Time:           "10:00",
		}
	}

	uc := newCreateBooking(repo)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = uc.Execute(context.Background(), in("Carla Soto", "carla@example.com"))
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = uc.Execute(context.Background(), in("Pedro Rojas", "pedro@example.com"))
	}()
	wg.Wait()

	winners, losers := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			winners++
		case httperr.IsBusiness(err, "slot_no_longer_available"):
			losers++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if winners != 1 || losers != 1 {
		t.Fatalf("winners = %d, losers = %d; want exactly one of each", winners, losers)
	}

	stored := repo.storedAppointments()
	if len(stored) != 1 {
		t.Fatalf("appointments stored = %d, want exactly 1", len(stored))
	}
	if stored[0].StartTime.Hour() != 10 {
		t.Errorf("stored start = %v, want 10:00", stored[0].StartTime)
	}
}

func TestCreateBooking_RepoGuardStopsRace(t *testing.T) {
	repo := mondayRepo()
	date := futureMonday(t)
	day := mustDate(date)

	// simula al segundo escritor que pasó la revalidación antes de que
	// el primero insertara: el repositorio es la última defensa
	first := day.Add(10 * time.Hour)

	pro := proID
	if err := repo.CreateAppointment(context.Background(), appointmentAt(&pro, first, first.Add(time.Hour))); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	err := repo.CreateAppointment(context.Background(), appointmentAt(&pro, first, first.Add(time.Hour)))
	if !httperr.IsBusiness(err, "slot_no_longer_available") {
		t.Fatalf("expected slot_no_longer_available, got %v", err)
	}

	if len(repo.appointments) != 1 {
		t.Fatalf("appointments stored = %d, want exactly 1", len(repo.appointments))
	}
}

func TestCreateBooking_RejectsSlotOffTheGrid(t *testing.T) {
	repo := mondayRepo()
	uc := newCreateBooking(repo)

	// 09:30 no es un inicio generado por un servicio de 60 min desde las 09:00
	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: proID,
		ServiceID:      svcID,
		ClientName:     "Carla Soto",
		ClientEmail:    "carla@example.com",
		Date:           futureMonday(t),
		Time:           "09:30",
	})
	if !httperr.IsBusiness(err, "slot_no_longer_available") {
		t.Fatalf("expected slot_no_longer_available, got %v", err)
	}
}

func TestCreateBooking_RejectsPastDate(t *testing.T) {
	repo := mondayRepo()
	uc := newCreateBooking(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: proID,
		ServiceID:      svcID,
		ClientName:     "Carla Soto",
		ClientEmail:    "carla@example.com",
		Date:           monday, // lunes de 2025, ya en el pasado
		Time:           "10:00",
	})
	if !httperr.IsBusiness(err, "slot_no_longer_available") {
		t.Fatalf("expected slot_no_longer_available for past date, got %v", err)
	}
}

func TestCreateBooking_RejectsMalformedDateTime(t *testing.T) {
	repo := mondayRepo()
	uc := newCreateBooking(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: proID,
		ServiceID:      svcID,
		ClientName:     "Carla Soto",
		ClientEmail:    "carla@example.com",
		Date:           "29/12/2025",
		Time:           "10:00",
	})
	if !httperr.IsBusiness(err, "invalid_date_or_time") {
		t.Fatalf("expected invalid_date_or_time, got %v", err)
	}

	if len(repo.appointments) != 0 {
		t.Fatalf("nothing should be persisted on validation failure")
	}
}

func TestCreateBooking_UnknownServiceNotFound(t *testing.T) {
	repo := mondayRepo()
	uc := newCreateBooking(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProfessionalID: proID,
		ServiceID:      999,
		ClientName:     "Carla Soto",
		ClientEmail:    "carla@example.com",
		Date:           futureMonday(t),
		Time:           "10:00",
	})
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Fatalf("expected service_not_found, got %v", err)
	}
}
