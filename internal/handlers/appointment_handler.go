package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexthora/booking-api/internal/cache"
	domain "github.com/nexthora/booking-api/internal/domain/booking"
	"github.com/nexthora/booking-api/internal/httperr"
	"github.com/nexthora/booking-api/internal/httpresp"
	"github.com/nexthora/booking-api/internal/middleware"
	"github.com/nexthora/booking-api/internal/timezone"
	ucBooking "github.com/nexthora/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER (API privada del profesional)
// ======================================================

type AppointmentHandler struct {
	listByDate  *ucBooking.ListBookingsByDate
	listByMonth *ucBooking.ListBookingsByMonth
	cancel      *ucBooking.CancelBooking
	complete    *ucBooking.CompleteBooking
	cache       *cache.AvailabilityCache
}

func NewAppointmentHandler(
	listByDate *ucBooking.ListBookingsByDate,
	listByMonth *ucBooking.ListBookingsByMonth,
	cancel *ucBooking.CancelBooking,
	complete *ucBooking.CompleteBooking,
	cache *cache.AvailabilityCache,
) *AppointmentHandler {
	return &AppointmentHandler{
		listByDate:  listByDate,
		listByMonth: listByMonth,
		cancel:      cancel,
		complete:    complete,
		cache:       cache,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = timezone.Now().Format("2006-01-02")
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	out, err := h.listByDate.Execute(c.Request.Context(), professionalID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	out, err := h.listByMonth.Execute(
		c.Request.Context(),
		professionalID,
		year,
		time.Month(month),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// STATE CHANGES
// ======================================================

type CancelAppointmentRequest struct {
	// "client" si el cliente pidió cancelar; cualquier otro valor
	// (o ausencia) registra cancelación del profesional.
	By string `json:"by"`
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req CancelAppointmentRequest
	_ = c.ShouldBindJSON(&req)

	by := domain.StatusCancelledByPro
	if req.By == "client" {
		by = domain.StatusCancelledByClient
	}

	ap, err := h.cancel.Execute(c.Request.Context(), professionalID, uint(id), by)
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "La cita no se puede cancelar.")
			return
		}
		httperr.Internal(c, "failed_to_cancel", "Error al cancelar la cita.")
		return
	}

	// el horario vuelve a quedar libre
	h.cache.Invalidate(c.Request.Context(), professionalID)

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextProfessionalID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), professionalID, uint(id))
	if err != nil {
		if httperr.IsBusiness(err, "appointment_not_found") {
			httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
			return
		}
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "La cita no se puede completar.")
			return
		}
		httperr.Internal(c, "failed_to_complete", "Error al completar la cita.")
		return
	}

	httpresp.OK(c, ap)
}
