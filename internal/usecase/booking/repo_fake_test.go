package booking

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/nexthora/booking-api/internal/domain/booking"
	"github.com/nexthora/booking-api/internal/httperr"
	"github.com/nexthora/booking-api/internal/models"
	"github.com/nexthora/booking-api/internal/timeutil"
	"github.com/nexthora/booking-api/internal/timezone"
)

// fakeRepo es un repositorio en memoria para las pruebas de los casos de
// uso. Todos los métodos toman el mutex: los commits concurrentes leen y
// escriben las mismas listas. CreateAppointment replica el contrato del
// repositorio real: la inserción es atómica y reafirma el no-traslape.
type fakeRepo struct {
	mu sync.Mutex

	professionals []models.Professional
	services      []models.Service
	hours         []models.BusinessHours
	timeOff       []models.TimeOff
	appointments  []models.Appointment

	// error inyectable para simular almacenamiento caído
	hoursErr error

	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (r *fakeRepo) GetProfessionalByID(_ context.Context, id uint) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.professionals {
		if r.professionals[i].ID == id {
			pro := r.professionals[i]
			return &pro, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetProfessionalBySlug(_ context.Context, slug string) (*models.Professional, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.professionals {
		if r.professionals[i].Slug == slug {
			pro := r.professionals[i]
			return &pro, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetService(_ context.Context, professionalID, serviceID uint) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.services {
		if r.services[i].ID == serviceID && r.services[i].ProfessionalID == professionalID {
			svc := r.services[i]
			return &svc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) CountServices(_ context.Context, professionalID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for i := range r.services {
		if r.services[i].ProfessionalID == professionalID {
			count++
		}
	}
	return count, nil
}

func (r *fakeRepo) GetBusinessHours(_ context.Context, professionalID uint, weekday int) (*models.BusinessHours, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hoursErr != nil {
		return nil, r.hoursErr
	}

	for i := range r.hours {
		if r.hours[i].ProfessionalID == professionalID && r.hours[i].Weekday == weekday {
			wh := r.hours[i]
			return &wh, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) HasTimeOff(_ context.Context, professionalID uint, date time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.timeOff {
		to := r.timeOff[i]
		if to.ProfessionalID != professionalID {
			continue
		}
		if !date.Before(to.StartDate) && !date.After(to.EndDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ProfessionalID == nil || *ap.ProfessionalID != professionalID {
			continue
		}
		if ap.Status != string(domain.StatusConfirmed) {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, ap)
	}
	// orden ascendente por inicio, como el repositorio real
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].StartTime.Before(out[j-1].StartTime); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, professionalID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ProfessionalID == nil || *ap.ProfessionalID != professionalID {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.ProfessionalID == nil || *existing.ProfessionalID != *ap.ProfessionalID {
			continue
		}
		if existing.Status != string(domain.StatusConfirmed) {
			continue
		}
		if timeutil.Overlaps(ap.StartTime, ap.EndTime, existing.StartTime, existing.EndTime) {
			return httperr.ErrBusiness("slot_no_longer_available")
		}
	}

	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) GetAppointmentForProfessional(_ context.Context, appointmentID, professionalID uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == appointmentID &&
			r.appointments[i].ProfessionalID != nil &&
			*r.appointments[i].ProfessionalID == professionalID {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetAppointmentByCode(_ context.Context, professionalID uint, code string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].Code == code &&
			r.appointments[i].ProfessionalID != nil &&
			*r.appointments[i].ProfessionalID == professionalID {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// helpers de armado
// --------------------------------------------------

func (r *fakeRepo) addProfessional(id uint, slug string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.professionals = append(r.professionals, models.Professional{
		ID:   id,
		Slug: slug,
	})
}

func (r *fakeRepo) addService(id, professionalID uint, durationMin int, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.services = append(r.services, models.Service{
		ID:             id,
		ProfessionalID: professionalID,
		Name:           "Servicio",
		DurationMin:    durationMin,
		Active:         active,
	})
}

func (r *fakeRepo) addHours(professionalID uint, weekday int, start, end string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hours = append(r.hours, models.BusinessHours{
		ProfessionalID: professionalID,
		Weekday:        weekday,
		StartTime:      start,
		EndTime:        end,
	})
}

func (r *fakeRepo) addTimeOff(professionalID uint, start, end time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.timeOff = append(r.timeOff, models.TimeOff{
		ProfessionalID: professionalID,
		StartDate:      start,
		EndDate:        end,
	})
}

func (r *fakeRepo) addConfirmed(professionalID uint, start, end time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := professionalID
	r.appointments = append(r.appointments, models.Appointment{
		ID:             r.nextID,
		ProfessionalID: &id,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.StatusConfirmed),
	})
	r.nextID++
}

func (r *fakeRepo) storedAppointments() []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out
}

func appointmentAt(professionalID *uint, start, end time.Time) *models.Appointment {
	return &models.Appointment{
		ProfessionalID: professionalID,
		ClientName:     "Cliente",
		ClientEmail:    "cliente@example.com",
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.StatusConfirmed),
	}
}

func mustDate(t string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", t, timezone.Location())
	if err != nil {
		panic(err)
	}
	return d
}
