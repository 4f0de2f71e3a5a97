package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nexthora/booking-api/internal/cache"
	domain "github.com/nexthora/booking-api/internal/domain/booking"
	"github.com/nexthora/booking-api/internal/httperr"
	"github.com/nexthora/booking-api/internal/models"
	ucBooking "github.com/nexthora/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER (API pública, sin autenticación)
// ======================================================

// Los códigos de rechazo públicos son parte del contrato con el
// frontend de reserva: MISSING_FIELDS, SLOT_NO_LONGER_AVAILABLE,
// NOT_FOUND. Un slug o servicio desconocido siempre responde el
// mismo NOT_FOUND genérico, sin detalle que permita enumerar ids.

type PublicHandler struct {
	db            *gorm.DB
	repo          domain.Repository
	availability  *ucBooking.GetAvailability
	createBooking *ucBooking.CreateBooking
	cache         *cache.AvailabilityCache
}

func NewPublicHandler(
	db *gorm.DB,
	repo domain.Repository,
	availability *ucBooking.GetAvailability,
	createBooking *ucBooking.CreateBooking,
	cache *cache.AvailabilityCache,
) *PublicHandler {
	return &PublicHandler{
		db:            db,
		repo:          repo,
		availability:  availability,
		createBooking: createBooking,
		cache:         cache,
	}
}

// ======================================================
// DTOs
// ======================================================

type PublicCreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email" binding:"required,email"`
	ClientPhone string `json:"client_phone"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
}

// ======================================================
// PROFILE
// ======================================================

func (h *PublicHandler) GetProfile(c *gin.Context) {
	slug := c.Param("slug")

	pro, err := h.repo.GetProfessionalBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "NOT_FOUND", "Perfil no encontrado.")
		return
	}

	// solo servicios activos son visibles para reservar
	var services []models.Service
	if err := h.db.
		Where("professional_id = ? AND active = true", pro.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Error al listar servicios.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional": gin.H{
			"slug":         pro.Slug,
			"display_name": pro.DisplayName,
			"bio":          pro.Bio,
		},
		"services": services,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Fecha y servicio obligatorios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.NotFound(c, "NOT_FOUND", "Servicio no encontrado.")
		return
	}

	pro, err := h.repo.GetProfessionalBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "NOT_FOUND", "Perfil no encontrado.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
		return
	}

	// lectura con cache; el commit nunca pasa por aquí
	if slots, ok := h.cache.Get(c.Request.Context(), pro.ID, uint(serviceID), dateStr); ok {
		c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			ProfessionalID: pro.ID,
			ServiceID:      uint(serviceID),
			Date:           date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.NotFound(c, "NOT_FOUND", "Servicio no encontrado.")
			return
		}

		httperr.Internal(c, "availability_failed", "Error al calcular horarios.")
		return
	}

	h.cache.Set(c.Request.Context(), pro.ID, uint(serviceID), dateStr, slots)

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE BOOKING (COMMIT)
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	slug := c.Param("slug")

	pro, err := h.repo.GetProfessionalBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "NOT_FOUND", "Perfil no encontrado.")
		return
	}

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// campos requeridos ausentes o mal formados: no se crea nada
		httperr.BadRequest(c, "MISSING_FIELDS", "Faltan datos obligatorios.")
		return
	}

	ap, err := h.createBooking.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			ProfessionalID: pro.ID,
			ServiceID:      req.ServiceID,
			ClientName:     req.ClientName,
			ClientEmail:    req.ClientEmail,
			ClientPhone:    req.ClientPhone,
			Date:           req.Date,
			Time:           req.Time,
		},
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.NotFound(c, "NOT_FOUND", "Servicio no encontrado.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "MISSING_FIELDS", "Fecha u hora inválida.")
		case httperr.IsBusiness(err, "slot_no_longer_available"):
			// otro commit ganó la carrera, o el horario dejó de existir
			httperr.Conflict(c, "SLOT_NO_LONGER_AVAILABLE", "El horario ya no está disponible.")
		default:
			httperr.Internal(c, "booking_failed", "Error al crear la reserva.")
		}
		return
	}

	h.cache.Invalidate(c.Request.Context(), pro.ID)

	c.JSON(http.StatusCreated, gin.H{
		"code":         ap.Code,
		"client_name":  ap.ClientName,
		"start_time":   ap.StartTime,
		"end_time":     ap.EndTime,
		"status":       ap.Status,
		"professional": pro.DisplayName,
	})
}

// ======================================================
// CONFIRMATION LOOKUP
// ======================================================

func (h *PublicHandler) GetBookingByCode(c *gin.Context) {
	slug := c.Param("slug")
	code := c.Param("code")

	pro, err := h.repo.GetProfessionalBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "NOT_FOUND", "Perfil no encontrado.")
		return
	}

	ap, err := h.repo.GetAppointmentByCode(c.Request.Context(), pro.ID, code)
	if err != nil {
		httperr.NotFound(c, "NOT_FOUND", "Reserva no encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":        ap.Code,
		"client_name": ap.ClientName,
		"service":     ap.Service.Name,
		"start_time":  ap.StartTime,
		"end_time":    ap.EndTime,
		"status":      ap.Status,
	})
}
