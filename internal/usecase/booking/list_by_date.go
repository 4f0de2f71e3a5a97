package booking

import (
	"context"
	"time"

	domain "github.com/nexthora/booking-api/internal/domain/booking"
	"github.com/nexthora/booking-api/internal/dto"
	"github.com/nexthora/booking-api/internal/timeutil"
	"github.com/nexthora/booking-api/internal/timezone"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(
	repo domain.Repository,
) *ListBookingsByDate {
	return &ListBookingsByDate{
		repo: repo,
	}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	professionalID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	start, end := timeutil.DayBounds(date, timezone.Location())

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		professionalID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.BookingListDTO{
			ID:          ap.ID,
			Code:        ap.Code,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  ap.ClientName,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}
