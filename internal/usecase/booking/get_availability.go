package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/nexthora/booking-api/internal/domain/booking"
	"github.com/nexthora/booking-api/internal/httperr"
	"github.com/nexthora/booking-api/internal/timeutil"
	"github.com/nexthora/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository

	// reloj inyectable para las pruebas; nil usa la zona del sistema
	now func() time.Time
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) currentTime() time.Time {
	if uc.now != nil {
		return uc.now()
	}
	return timezone.Now()
}

// Execute calcula los horarios reservables para un servicio en una fecha.
// Orden de precedencia: bloqueo de fechas, luego horario semanal, luego
// filtros por "ahora" y por citas confirmadas existentes.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	service, err := uc.repo.GetService(ctx, in.ProfessionalID, in.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	// un servicio desactivado es invisible para el público
	if !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	loc := timezone.Location()
	date := timeutil.DateOnly(in.Date, loc)

	// 1. Un bloqueo que cubre la fecha manda sobre todo lo demás.
	blocked, err := uc.repo.HasTimeOff(ctx, in.ProfessionalID, date)
	if err != nil {
		return nil, err
	}
	if blocked {
		return []domain.TimeSlot{}, nil
	}

	// 2. Sin bloque semanal para ese día no hay atención. El caller no
	// distingue este caso del bloqueo: ambos son "sin horarios". Una
	// falla real de almacenamiento sí sube tal cual.
	wh, err := uc.repo.GetBusinessHours(ctx, in.ProfessionalID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []domain.TimeSlot{}, nil
		}
		return nil, err
	}

	dayStart, err := timeutil.At(date, wh.StartTime, loc)
	if err != nil {
		return nil, err
	}
	dayEnd, err := timeutil.At(date, wh.EndTime, loc)
	if err != nil {
		return nil, err
	}

	windowStart, windowEnd := timeutil.DayBounds(date, loc)
	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		in.ProfessionalID,
		windowStart,
		windowEnd,
	)
	if err != nil {
		return nil, err
	}

	now := uc.currentTime()

	// 3. Candidatos a paso fijo: el paso es la duración del servicio, no
	// una grilla. Un resto menor que la duración queda sin usar.
	slotDuration := time.Duration(service.DurationMin) * time.Minute
	slots := []domain.TimeSlot{}

	apIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		// nunca se ofrecen horarios ya pasados; en fechas futuras esta
		// condición no puede darse
		if slotStart.Before(now) {
			continue
		}

		// avanza citas que terminan antes (o justo) al inicio del candidato
		for apIdx < len(appointments) && !appointments[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		if apIdx < len(appointments) {
			ap := appointments[apIdx]
			if timeutil.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				continue
			}
		}

		slots = append(slots, domain.TimeSlot{
			Start: slotStart.Format("15:04"),
			End:   slotEnd.Format("15:04"),
		})
	}

	return slots, nil
}
